package cli

import (
	"fmt"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/calculator"
	"github.com/spf13/cobra"
)

func (a *app) calcCmd() *cobra.Command {
	var (
		req  calculator.Request
		dims calculator.Dimensions
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Price a lumber order",
		Long: "Price a lumber order from piece dimensions in millimetres or an explicit volume in m³.\n" +
			"Delivery is charged when a distance is given; installation adds 20% of the material cost.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dims != (calculator.Dimensions{}) {
				req.Dimensions = &dims
			}

			result, err := calculator.Calculate(req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput {
				return a.printJSON(out, result)
			}
			return table(out, "ITEM\tVALUE", []string{
				fmt.Sprintf("Volume per piece\t%.4f m³", result.Volume),
				fmt.Sprintf("Total volume\t%.4f m³", result.TotalVolume),
				fmt.Sprintf("Material\t%.2f", result.Material),
				fmt.Sprintf("Delivery\t%.2f", result.Delivery),
				fmt.Sprintf("Installation\t%.2f", result.Installation),
				fmt.Sprintf("Total\t%.2f", result.Total),
			})
		},
	}

	f := cmd.Flags()
	f.IntVar(&dims.Length, "length", 0, "piece length in mm")
	f.IntVar(&dims.Width, "width", 0, "piece width in mm")
	f.IntVar(&dims.Thickness, "thickness", 0, "piece thickness in mm")
	f.Float64Var(&req.Volume, "volume", 0, "volume per piece in m³, used when no dimensions are given")
	f.StringVar(&req.WoodType, "wood", calculator.DefaultWoodType, "wood type")
	f.StringVar(&req.Treatment, "treatment", calculator.DefaultTreatment, "treatment")
	f.IntVar(&req.Quantity, "quantity", 1, "number of pieces")
	f.Float64Var(&req.DistanceKm, "distance", 0, "delivery distance in km, 0 for pickup")
	f.BoolVar(&req.Installation, "install", false, "include installation")

	return cmd
}
