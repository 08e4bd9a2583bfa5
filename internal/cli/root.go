// Package cli implements catalogctl, a command line view of the catalog
// and the price calculator.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/catalog"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/repository"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/service"
	"github.com/spf13/cobra"
)

type app struct {
	locale     string
	jsonOutput bool
	products   *service.ProductService
}

// NewRootCommand builds the catalogctl command tree over the seed catalog
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Browse the lumber catalog and price orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			engine, err := catalog.NewEngine(a.locale)
			if err != nil {
				return err
			}
			a.products, err = service.NewProductService(cmd.Context(), repository.NewInMemoryCatalogRepository(), engine)
			return err
		},
	}

	root.PersistentFlags().StringVar(&a.locale, "locale", "ru", "locale used to sort product names")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "print JSON instead of a table")

	root.AddCommand(
		a.categoriesCmd(),
		a.productsCmd(),
		a.productCmd(),
		a.calcCmd(),
	)
	return root
}

func (a *app) printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table writes tab-separated rows aligned into columns
func table(w io.Writer, header string, rows []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, row := range rows {
		fmt.Fprintln(tw, row)
	}
	return tw.Flush()
}
