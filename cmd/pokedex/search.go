package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/pokedex/pkg/services"
	"github.com/spf13/cobra"
)

var searchBatches int

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search loaded Pokémon by name",
	Long: fmt.Sprintf("Load batches from the PokéAPI and filter them by name. Queries shorter than %d characters match everything.",
		services.MinQueryLength),
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		session, err := openSession()
		if err != nil {
			return err
		}
		defer session.Close()

		if err := loadBatches(cmd.Context(), cmd.ErrOrStderr(), session, searchBatches); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		records := session.Controller.Records()
		result := session.Controller.Filter(query)
		if result.NoResults {
			fmt.Fprintln(out, "No Pokémon found.")
			return nil
		}

		var (
			red = lipgloss.Color("#D62828")

			headerStyle = lipgloss.NewStyle().Foreground(red).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(red)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("#", "Name", "Types", "XP")

		for i, rec := range records {
			index := i + 1
			if !result.IsVisible(index) {
				continue
			}
			t.Row(fmt.Sprintf("%d", index), truncateString(rec.DisplayName(), 30), strings.Join(rec.Types, "/"), fmt.Sprintf("%d", rec.Experience))
		}

		fmt.Fprintln(out, t)
		fmt.Fprintf(out, "%d of %d match\n", result.Matches, len(records))
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchBatches, "batches", "b", 1, "number of batches to load before searching")
	rootCmd.AddCommand(searchCmd)
}
