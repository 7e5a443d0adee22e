package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-activity-timeline/internal/util"
)

const descriptionWidth = 60

var (
	categoriesAll    bool
	categoriesPrompt bool
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the configured activity categories",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)

	categoriesCmd.Flags().BoolVar(&categoriesAll, "all", false,
		"Include internal categories such as Unknown")
	categoriesCmd.Flags().BoolVar(&categoriesPrompt, "prompt", false,
		"Print name: description lines for a classifier prompt")
}

func runCategories(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if categoriesPrompt {
		_, err := fmt.Fprint(out, a.registry.Describe())
		return err
	}

	rows := make([][]string, 0)
	for _, name := range a.registry.Names(categoriesAll) {
		c := a.registry.Lookup(name)
		role := ""
		switch name {
		case a.registry.Unknown().Name:
			role = "unknown"
		case a.registry.Fallback().Name:
			role = "fallback"
		case a.cfg.TrackedCategory:
			role = "tracked"
		}
		rows = append(rows, []string{c.Name, c.Color.Hex(), role, util.Truncate(c.Description, descriptionWidth)})
	}

	_, err = fmt.Fprintln(out, renderTable([]string{"Category", "Color", "Role", "Description"}, rows, nil))
	return err
}
