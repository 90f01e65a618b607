package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/notenik/pkg/adapters/fs"
	"github.com/aretw0/notenik/pkg/adapters/lifecycle"
)

var (
	watchDebounce   time.Duration
	watchSkipErrors bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Print a note each time it changes on disk",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env := openEnv(cmd)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		changes, err := env.Store.Watch(ctx, args[0], env.Collection, watchDebounce)
		if err != nil {
			fatal("Failed to watch note", err)
		}
		src := lifecycle.NewSource(changes, lifecycle.Options{
			Logger:     env.Logger,
			SkipErrors: watchSkipErrors,
		})
		if err := src.Start(ctx); err != nil {
			fatal("Failed to start watcher", err)
		}

		env.Logger.Info("watching note", "path", args[0])
		for event := range src.Events() {
			fmt.Println(event)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", fs.DefaultDebounce, "Wait this long for edits to settle")
	watchCmd.Flags().BoolVar(&watchSkipErrors, "skip-errors", false, "Do not print failed re-reads")
}
