package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/spf13/cobra"
)

var listBatches int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List Pokémon",
	Long:  "Load one or more batches from the PokéAPI and display them in a formatted table",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}
		defer session.Close()

		if err := loadBatches(cmd.Context(), cmd.ErrOrStderr(), session, listBatches); err != nil {
			return err
		}

		records := session.Controller.Records()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\n📖 Pokédex (%d Pokémon)\n\n", len(records))
		fmt.Fprintln(out, recordTable(records).View())
		return nil
	},
}

func recordTable(records []*data.Record) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Name", Width: 20},
		{Title: "Types", Width: 18},
		{Title: "XP", Width: 6},
		{Title: "Height", Width: 8},
		{Title: "Weight", Width: 9},
	}

	rows := []table.Row{}
	for i, rec := range records {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			truncateString(rec.DisplayName(), 20),
			strings.Join(rec.Types, "/"),
			fmt.Sprintf("%d", rec.Experience),
			fmt.Sprintf("%.1f m", rec.HeightMeters()),
			fmt.Sprintf("%.1f kg", rec.WeightKilograms()),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.NoColor{}).
		Bold(false)
	t.SetStyles(s)
	return t
}

func init() {
	listCmd.Flags().IntVarP(&listBatches, "batches", "b", 1, "number of batches to load")
	rootCmd.AddCommand(listCmd)
}
