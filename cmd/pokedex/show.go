package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pokedex/pkg/app/components"
	"github.com/kerbaras/pokedex/pkg/app/styles"
	"github.com/kerbaras/pokedex/pkg/charts"
	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/kerbaras/pokedex/pkg/sources"
	"github.com/spf13/cobra"
)

var showWidth int

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one Pokémon",
	Long:  "Fetch a single Pokémon and print its card, measurements and base stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}
		defer session.Close()

		theme, err := session.Repo.GetTheme()
		if err != nil {
			return err
		}
		styles.Apply(theme)

		rec, err := fetchRecord(cmd.Context(), session.Source, args[0])
		if err != nil {
			return err
		}
		chart := charts.Render(rec, showWidth)

		measures := fmt.Sprintf("Height: %.1f m   Weight: %.1f kg", rec.HeightMeters(), rec.WeightKilograms())
		image := styles.MutedStyle.Render(rec.ImageURL)
		if !rec.HasImage() {
			image = styles.MutedStyle.Render("(no image)")
		}

		fmt.Fprintln(cmd.OutOrStdout(), lipgloss.JoinVertical(
			lipgloss.Left,
			components.RenderCard(rec.ID, rec, false),
			"",
			styles.TextStyle.Render(measures),
			image,
			"",
			components.RenderStatChart(chart, 50),
		))
		return nil
	},
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}

func fetchRecord(ctx context.Context, source sources.Source, arg string) (*data.Record, error) {
	id, err := parseID(arg)
	if err != nil {
		return nil, err
	}

	rec, err := source.GetPokemon(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch #%d: %w", id, err)
	}
	return rec, nil
}

func init() {
	showCmd.Flags().IntVar(&showWidth, "width", 1024, "viewport width in pixels used to size chart labels")
	rootCmd.AddCommand(showCmd)
}
