package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notenik/pkg/adapters/fs"
	"github.com/aretw0/notenik/pkg/core"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <file|glob>...",
	Short: "Show the fields of one or more notes",
	Long: `Parse notes and print their fields. On a terminal each note is shown as
a table; otherwise, or with --format, all notes are exported as json, yaml
or csv.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env := openEnv(cmd)
		paths, err := fs.Expand(args)
		if err != nil {
			fatal("Invalid path", err)
		}

		notes := make([]*core.Note, 0, len(paths))
		for _, path := range paths {
			n, err := env.Store.ReadNote(path, env.Collection)
			if err != nil {
				fatal("Failed to read note", err)
			}
			notes = append(notes, n)
		}

		format := parseFormat
		if format == "" {
			if !isTerminal(os.Stdout) {
				format = "json"
			} else {
				printNoteTables(paths, notes)
				return
			}
		}
		if format == "table" {
			printNoteTables(paths, notes)
			return
		}

		exporter, err := fs.ExporterFor(format)
		if err != nil {
			fatal("Invalid --format", err)
		}
		if err := exporter.Export(os.Stdout, notes); err != nil {
			fatal("Failed to export notes", err)
		}
	},
}

func printNoteTables(paths []string, notes []*core.Note) {
	for i, n := range notes {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (%s)\n", paths[i], n.Dialect)
		rows := make([][]string, 0, n.Len())
		for _, f := range n.Fields() {
			rows = append(rows, []string{f.Def.Label.Proper, f.Def.Kind.String(), preview(f.Value.String())})
		}
		fmt.Println(renderTable([]string{"Field", "Kind", "Value"}, rows, nil))
	}
}

// preview shortens long text values to their first line.
func preview(s string) string {
	s = strings.TrimRight(s, "\n")
	if line, _, multi := strings.Cut(s, "\n"); multi {
		return line + " …"
	}
	return s
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "Output format: table, json, yaml or csv")
}
