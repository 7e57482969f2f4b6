package main

import (
	"os"

	"study-helper/internal/client"
	"study-helper/internal/history"
	"study-helper/internal/render"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "studyctl",
		Short:         "Terminal client for the Study Helper API",
		Long:          "studyctl fetches summaries, quizzes and study tips from a Study Helper server and keeps a local history of studied topics.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultAPI := os.Getenv("STUDY_API_URL")
	if defaultAPI == "" {
		defaultAPI = client.DefaultBaseURL
	}
	root.PersistentFlags().String("api", defaultAPI, "Study Helper API base URL (overrides STUDY_API_URL)")
	root.PersistentFlags().String("state", "", "Path to the state file (default $XDG_CONFIG_HOME/studyhelper/state.json)")

	root.AddCommand(newStudyCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newHealthCmd())
	root.AddCommand(newThemeCmd())
	return root
}

// openStore returns the state store selected by --state, or the default location.
func openStore(cmd *cobra.Command) (*history.Store, error) {
	if p, _ := cmd.Flags().GetString("state"); p != "" {
		return history.NewStore(p), nil
	}
	p, err := history.DefaultPath()
	if err != nil {
		return nil, err
	}
	return history.NewStore(p), nil
}

func apiClient(cmd *cobra.Command) *client.Client {
	baseURL, _ := cmd.Flags().GetString("api")
	return client.New(baseURL)
}

// loadTheme picks the saved theme. An unreadable state file falls back to the light theme.
func loadTheme(store *history.Store) render.Theme {
	state, err := store.Load()
	if err != nil {
		return render.Light
	}
	return render.For(state.DarkMode)
}
