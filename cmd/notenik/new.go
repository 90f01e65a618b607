package main

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notenik/pkg/adapters/fs"
	"github.com/aretw0/notenik/pkg/core"
)

var (
	newDialect string
	newFields  []string
	newBody    string
	newForce   bool
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a note in the collection directory",
	Long: `Create a note named after its title. Extra fields are given as
--field "Label=value" and are checked against the collection, so a locked
or restricted collection refuses labels it does not know.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env := openEnv(cmd)

		dialect := core.DialectNotenik
		if newDialect != "" {
			d, err := core.ParseDialect(newDialect)
			if err != nil {
				fatal("Invalid --dialect", err)
			}
			dialect = d
		}

		n := core.NewNote(env.Collection)
		n.Dialect = dialect
		if err := n.SetField("Title", args[0]); err != nil {
			fatal("Failed to set title", err)
		}
		for _, kv := range newFields {
			label, val, ok := strings.Cut(kv, "=")
			if !ok {
				fatal("Invalid --field", fmt.Errorf("%q is not Label=value", kv))
			}
			if err := n.SetField(label, val); err != nil {
				fatal("Invalid --field", err)
			}
		}
		if newBody != "" {
			body := newBody
			if !strings.HasSuffix(body, "\n") {
				body += "\n"
			}
			if err := n.SetField("Body", body); err != nil {
				fatal("Failed to set body", err)
			}
		}

		path := env.Store.Resolve(fs.FileName(args[0], env.Writer.Dialect(n)))
		if !newForce {
			if _, err := os.Stat(path); err == nil {
				fatal("Refusing to overwrite", fmt.Errorf("%s exists (use --force)", path))
			} else if !errors.Is(err, iofs.ErrNotExist) {
				fatal("Failed to check path", err)
			}
		}
		if err := env.Store.WriteNote(path, n); err != nil {
			fatal("Failed to save note", err)
		}
		fmt.Println(path)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newDialect, "dialect", "d", "", "Dialect to write: notenik, markdown, multimarkdown or plain")
	newCmd.Flags().StringArrayVarP(&newFields, "field", "F", nil, "Field as Label=value (repeatable)")
	newCmd.Flags().StringVarP(&newBody, "body", "b", "", "Note body")
	newCmd.Flags().BoolVar(&newForce, "force", false, "Overwrite an existing file")
}
