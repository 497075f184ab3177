// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check that the API key and username can open a session",
	Long: `Login calls {base_url}/login with the configured username and API key
and prints the session ID Workfront returns. The username comes from
--username, WORKFRONT_USERNAME, or .secrets/workfront-username.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().String("username", "", "Workfront username (email)")

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg := workfrontConfig()
	if cfg.Username == "" {
		return fmt.Errorf("username required: pass --username or set WORKFRONT_USERNAME")
	}

	session, err := newClient().Login(cmd.Context(), cfg.Username)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Authentication successful!")
	fmt.Fprintf(out, "Session ID: %s\n", session.SessionID)
	if session.UserID != "" {
		fmt.Fprintf(out, "User ID: %s\n", session.UserID)
	}
	return nil
}
