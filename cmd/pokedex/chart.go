package cmd

import (
	"fmt"
	"os"

	"github.com/kerbaras/pokedex/pkg/charts"
	"github.com/spf13/cobra"
)

var (
	chartOutput string
	chartWidth  int
)

var chartCmd = &cobra.Command{
	Use:   "chart [id]",
	Short: "Export a stat chart as HTML",
	Long:  "Fetch a single Pokémon and write its base stat bar chart to an HTML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}
		defer session.Close()

		rec, err := fetchRecord(cmd.Context(), session.Source, args[0])
		if err != nil {
			return err
		}
		chart := charts.Render(rec, chartWidth)

		output := chartOutput
		if output == "" {
			output = fmt.Sprintf("%s.html", rec.Name)
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		defer f.Close()

		if err := chart.WriteHTML(f); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "📊 Wrote %s (font size %d)\n", output, chart.FontSize())
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "", "output file (default <name>.html)")
	chartCmd.Flags().IntVar(&chartWidth, "width", 1024, "viewport width in pixels used to size chart labels")
	rootCmd.AddCommand(chartCmd)
}
