package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notenik/pkg/core"
	"github.com/aretw0/notenik/pkg/value"
)

var (
	seqField  string
	seqOnLeft bool
)

var seqCmd = &cobra.Command{
	Use:   "seq <file>",
	Short: "Increment a note's sequence field",
	Long: `Increment the note's sequence and save it. By default the last level
is bumped (1.2 becomes 1.3); --left bumps the first level and drops the
rest (1.2 becomes 2).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env := openEnv(cmd)
		path := args[0]

		n, err := env.Store.ReadNote(path, env.Collection)
		if err != nil {
			fatal("Failed to read note", err)
		}

		var field core.Field
		var ok bool
		if seqField != "" {
			field, ok = n.Field(seqField)
		} else {
			field, ok = n.OfKind(value.KindSequence)
		}
		if !ok {
			fatal("No sequence", fmt.Errorf("%s has no sequence field", path))
		}
		seq, ok := field.Value.(*value.Sequence)
		if !ok {
			fatal("No sequence", fmt.Errorf("field %s is %s, not seq", field.Def.Label.Proper, field.Def.Kind))
		}

		before := seq.String()
		seq.Increment(seqOnLeft)
		if err := n.SetValue(field.Def, seq); err != nil {
			fatal("Failed to update sequence", err)
		}
		if err := env.Store.WriteNote(path, n); err != nil {
			fatal("Failed to save note", err)
		}
		env.Logger.Debug("sequence incremented", "path", path, "from", before, "to", seq.String())
		fmt.Println(seq)
	},
}

func init() {
	rootCmd.AddCommand(seqCmd)
	seqCmd.Flags().StringVar(&seqField, "field", "", "Sequence field label (default: the note's first seq field)")
	seqCmd.Flags().BoolVar(&seqOnLeft, "left", false, "Increment the first level instead of the last")
}
