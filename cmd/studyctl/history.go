package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently studied topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return fmt.Errorf("resolve state path: %w", err)
			}
			state, err := store.Load()
			if err != nil {
				return err
			}
			theme := loadTheme(store)
			fmt.Fprintln(cmd.OutOrStdout(), theme.History(state.TopicHistory, time.Now()))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear the topic history",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return fmt.Errorf("resolve state path: %w", err)
			}
			if err := store.Clear(); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	})
	return cmd
}
