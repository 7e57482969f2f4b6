package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "Show or set the display theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"dark", "light"},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return fmt.Errorf("resolve state path: %w", err)
			}

			if len(args) == 1 {
				if err := store.SetDarkMode(args[0] == "dark"); err != nil {
					return fmt.Errorf("save theme: %w", err)
				}
			}

			theme := loadTheme(store)
			fmt.Fprintln(cmd.OutOrStdout(), theme.Title.Render("Theme: "+theme.Name))
			return nil
		},
	}
}
