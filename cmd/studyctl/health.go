package main

import (
	"fmt"

	"study-helper/internal/client"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the server is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return fmt.Errorf("resolve state path: %w", err)
			}
			theme := loadTheme(store)
			baseURL, _ := cmd.Flags().GetString("api")

			if !apiClient(cmd).Healthy(cmd.Context()) {
				fmt.Fprintln(cmd.ErrOrStderr(), theme.Failure(client.ErrUnreachable.Error()))
				return errReported
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.Correct.Render("Server is up: "+baseURL))
			return nil
		},
	}
}
