package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notenik"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notenik",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notenik version %s\n", strings.TrimSpace(notenik.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
