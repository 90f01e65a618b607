package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notenik/pkg/adapters/fs"
	"github.com/aretw0/notenik/pkg/core"
)

var (
	formatWrite   bool
	formatDialect string
)

var formatCmd = &cobra.Command{
	Use:   "format <file|glob>...",
	Short: "Rewrite notes in canonical form",
	Long: `Parse each note and write it back out. Without --write the result goes
to stdout. --dialect converts notes to another dialect; notes whose fields
the target cannot hold are written as classic Notenik instead.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env := openEnv(cmd)

		var target *core.Dialect
		if formatDialect != "" {
			d, err := core.ParseDialect(formatDialect)
			if err != nil {
				fatal("Invalid --dialect", err)
			}
			target = &d
		}

		paths, err := fs.Expand(args)
		if err != nil {
			fatal("Invalid path", err)
		}
		for _, path := range paths {
			n, err := env.Store.ReadNote(path, env.Collection)
			if err != nil {
				fatal("Failed to read note", err)
			}
			if target != nil && *target != n.Dialect {
				n.Dialect = *target
				n.Fence = ""
			}

			if !formatWrite {
				if len(paths) > 1 {
					fmt.Printf("==> %s <==\n", path)
				}
				if err := env.Writer.Encode(os.Stdout, n); err != nil {
					fatal("Failed to write note", err)
				}
				continue
			}
			if err := env.Store.WriteNote(path, n); err != nil {
				fatal("Failed to save note", err)
			}
			env.Logger.Info("note formatted", "path", path, "dialect", n.Dialect.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().BoolVarP(&formatWrite, "write", "w", false, "Write the result back to each file")
	formatCmd.Flags().StringVarP(&formatDialect, "dialect", "d", "", "Convert to dialect: notenik, markdown, multimarkdown or plain")
}
