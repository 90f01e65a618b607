package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/notenik/pkg/adapters/fs"
)

var checkWorkers int

var checkCmd = &cobra.Command{
	Use:   "check <file|glob>...",
	Short: "Verify that notes parse and survive a rewrite",
	Long: `Read every note, write it back in memory and read it again. Notes that
fail to read, or whose fields change on the way, make the command exit
with status 1. The DIALECT column shows where saving would escalate a
note to classic Notenik.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env := openEnv(cmd)
		paths, err := fs.Expand(args)
		if err != nil {
			fatal("Invalid path", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		reports := env.Store.Check(ctx, paths, env.Collection, checkWorkers)

		failed := 0
		rows := make([][]string, 0, len(reports))
		for _, r := range reports {
			if r.Err != nil {
				failed++
				rows = append(rows, []string{r.Path, "", "", "", "error: " + r.Err.Error()})
				continue
			}
			dialect := r.Dialect.String()
			if r.WriteDialect != r.Dialect {
				dialect += " -> " + r.WriteDialect.String()
			}
			status := "ok"
			if !r.Stable {
				failed++
				status = "unstable"
			}
			rows = append(rows, []string{r.Path, r.Title, dialect, strconv.Itoa(r.Fields), status})
		}

		if isTerminal(os.Stdout) {
			fmt.Println(renderTable([]string{"Path", "Title", "Dialect", "Fields", "Status"}, rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}))
		} else {
			for _, r := range reports {
				fmt.Println(r)
			}
		}

		if failed > 0 {
			fatal("Check failed", fmt.Errorf("%d of %d notes", failed, len(reports)))
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntVarP(&checkWorkers, "workers", "j", 0, "Number of parallel readers (default: number of CPUs)")
}
