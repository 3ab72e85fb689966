package cmd

import (
	"fmt"

	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or change the colour theme",
	Long:      "Print the persisted theme, or set it to dark or light, or toggle it",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}
		defer session.Close()

		out := cmd.OutOrStdout()
		if len(args) == 0 {
			theme, err := session.Repo.GetTheme()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, theme)
			return nil
		}

		var theme data.Theme
		switch args[0] {
		case "dark":
			theme = data.ThemeDark
		case "light":
			theme = data.ThemeLight
		case "toggle":
			if _, err := session.Controller.LoadTheme(); err != nil {
				return err
			}
			next, err := session.Controller.ToggleTheme()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "🎨 Theme set to %s\n", next)
			return nil
		default:
			return fmt.Errorf("unknown theme %q: must be dark, light or toggle", args[0])
		}

		if err := session.Repo.SetTheme(theme); err != nil {
			return err
		}
		fmt.Fprintf(out, "🎨 Theme set to %s\n", theme)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
