package cli

import (
	"fmt"
	"io"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/service"
	"github.com/spf13/cobra"
)

func (a *app) productsCmd() *cobra.Command {
	var (
		params  service.CatalogParams
		popular bool
	)
	filters := models.NewFilterOptions()

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products, optionally filtered, searched and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if popular {
				products, err := a.products.PopularProducts(cmd.Context())
				if err != nil {
					return err
				}
				if a.jsonOutput {
					return a.printJSON(out, products)
				}
				return productTable(out, products)
			}

			params.Filters = filters
			result, err := a.products.FilterProducts(cmd.Context(), params)
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return a.printJSON(out, result)
			}
			return productTable(out, result.Products)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&popular, "popular", false, "list the popular products shown on the home page")
	f.StringVar(&params.Search, "search", "", "case-insensitive text to look for")
	f.StringVar(&params.Category, "category", "", "category id (includes subcategories) or name")
	f.StringVar(&params.Sort, "sort", "", "default, price-asc, price-desc, name-asc or name-desc")
	f.StringSliceVar(&filters.Categories, "categories", nil, "category names")
	f.StringSliceVar(&filters.WoodTypes, "wood-type", nil, "wood types")
	f.IntSliceVar(&filters.Thicknesses, "thickness", nil, "thicknesses in mm")
	f.IntSliceVar(&filters.Widths, "width", nil, "widths in mm")
	f.IntSliceVar(&filters.Lengths, "length", nil, "lengths in mm")
	f.StringSliceVar(&filters.Grades, "grade", nil, "grades")
	f.StringSliceVar(&filters.Moistures, "moisture", nil, "moisture levels")
	f.StringSliceVar(&filters.SurfaceTreatments, "treatment", nil, "surface treatments")
	f.StringSliceVar(&filters.Purposes, "purpose", nil, "purposes")

	return cmd
}

func (a *app) productCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show a product and related products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := a.products.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("product %s: %w", args[0], err)
			}
			related, err := a.products.RelatedProducts(cmd.Context(), product.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput {
				return a.printJSON(out, map[string]any{
					"product": product,
					"related": related,
				})
			}

			fmt.Fprintf(out, "%s\n%s\n\n", product.Name, product.Description)
			rows := []string{
				fmt.Sprintf("Category\t%s", product.Category),
				fmt.Sprintf("Price\t%.2f / %s", product.Price, product.Unit),
				fmt.Sprintf("Stock\t%s", stock(product.InStock)),
			}
			if product.WoodType != "" {
				rows = append(rows, fmt.Sprintf("Wood\t%s", product.WoodType))
			}
			if d := dimensions(product); d != "" {
				rows = append(rows, fmt.Sprintf("Size\t%s", d))
			}
			if err := table(out, "FIELD\tVALUE", rows); err != nil {
				return err
			}

			if len(related) > 0 {
				fmt.Fprintln(out, "\nRelated:")
				for _, r := range related {
					fmt.Fprintf(out, "  %s  %s\n", r.ID, r.Name)
				}
			}
			return nil
		},
	}
}

func productTable(out io.Writer, products []models.Product) error {
	rows := make([]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%.2f\t%s\t%s", p.ID, p.Name, p.Category, p.Price, p.Unit, stock(p.InStock)))
	}
	if err := table(out, "ID\tNAME\tCATEGORY\tPRICE\tUNIT\tSTOCK", rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d products\n", len(products))
	return err
}

func stock(inStock bool) string {
	if inStock {
		return "in stock"
	}
	return "out of stock"
}

func dimensions(p *models.Product) string {
	format := func(v *int) string {
		if v == nil {
			return "?"
		}
		return fmt.Sprint(*v)
	}
	if p.Thickness == nil && p.Width == nil && p.Length == nil {
		return ""
	}
	return fmt.Sprintf("%sx%sx%s mm", format(p.Thickness), format(p.Width), format(p.Length))
}
