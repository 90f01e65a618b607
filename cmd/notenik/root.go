package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notenik/internal/platform"
	"github.com/aretw0/notenik/pkg/core"
)

var (
	verbose     bool
	dir         string
	noteType    string
	template    string
	configPath  string
	noConfig    bool
	valueColumn int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notenik",
	Short: "Read, check and rewrite Notenik plain text notes",
	Long: `notenik parses notes written as classic Notenik fields, Markdown,
MultiMarkdown or plain text, and writes them back in the same dialect.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVarP(&dir, "dir", "C", ".", "Collection directory")
	flags.StringVarP(&noteType, "type", "t", "", "Note type: general, simple or expanded")
	flags.StringVar(&template, "template", "", "Template note that fixes the collection's fields")
	flags.StringVar(&configPath, "config", "", "Config file (default: search for .notenik.yaml or .notenik.toml)")
	flags.BoolVar(&noConfig, "no-config", false, "Ignore any config file")
	flags.IntVar(&valueColumn, "column", 0, "Column at which classic field values start")
}

// openEnv sets up the collection from the global flags. Only flags the user
// actually set override the config file.
func openEnv(cmd *cobra.Command) *platform.Env {
	opts := []platform.Option{platform.WithLogger(slog.Default())}
	flags := cmd.Flags()
	if flags.Changed("type") {
		t, err := core.ParseNoteType(noteType)
		if err != nil {
			fatal("Invalid --type", err)
		}
		opts = append(opts, platform.WithNoteType(t))
	}
	if flags.Changed("template") {
		opts = append(opts, platform.WithTemplate(template))
	}
	if flags.Changed("config") {
		opts = append(opts, platform.WithConfigFile(configPath))
	}
	if noConfig {
		opts = append(opts, platform.WithoutConfigFile())
	}
	if flags.Changed("column") {
		opts = append(opts, platform.WithValueColumn(valueColumn))
	}

	env, err := platform.New(dir, opts...)
	if err != nil {
		fatal("Failed to open collection", err)
	}
	return env
}
