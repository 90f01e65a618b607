package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/notenik/pkg/adapters/fs"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields [file|glob]...",
	Short: "List the collection's fields",
	Long: `Print the collection's field dictionary in order. Any notes given are
read first, so the list includes every label they introduce.`,
	Run: func(cmd *cobra.Command, args []string) {
		env := openEnv(cmd)
		paths, err := fs.Expand(args)
		if err != nil {
			fatal("Invalid path", err)
		}
		for _, path := range paths {
			if _, err := env.Store.ReadNote(path, env.Collection); err != nil {
				fatal("Failed to read note", err)
			}
		}

		schema := env.Collection.Schema()
		rows := make([][]string, 0, schema.Len())
		for i, def := range schema.Defs() {
			rows = append(rows, []string{strconv.Itoa(i + 1), def.Label.Proper, def.Common(), def.Kind.String()})
		}
		fmt.Println(renderTable([]string{"#", "Label", "Common", "Kind"}, rows, []columnAlignment{alignRight}))
		fmt.Printf("note type %s, locked %t\n", env.Collection.NoteType, schema.Locked())
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
