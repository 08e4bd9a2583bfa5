package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
	"github.com/spf13/cobra"
)

func (a *app) categoriesCmd() *cobra.Command {
	var nested bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if nested {
				tree := a.products.CategoryTree()
				if a.jsonOutput {
					return a.printJSON(out, tree)
				}
				printTree(out, tree, 0)
				return nil
			}

			flat := a.products.Categories()
			if a.jsonOutput {
				return a.printJSON(out, flat)
			}
			rows := make([]string, 0, len(flat))
			for _, c := range flat {
				rows = append(rows, fmt.Sprintf("%s\t%s\t%s", c.ID, c.Name, c.ParentID))
			}
			return table(out, "ID\tNAME\tPARENT", rows)
		},
	}

	cmd.Flags().BoolVar(&nested, "tree", false, "show subcategories nested under their parent")
	return cmd
}

func printTree(w io.Writer, categories []models.Category, depth int) {
	for _, c := range categories {
		fmt.Fprintf(w, "%s%s (%s)\n", strings.Repeat("  ", depth), c.Name, c.ID)
		printTree(w, c.SubCategories, depth+1)
	}
}
