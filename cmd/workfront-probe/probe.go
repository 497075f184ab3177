// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/workfront-probe/internal/probe"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Run the connectivity probe (default command)",
	Long: `Probe sends one GET to {base_url}/project/search with fields=name,status
and prints the indented response on success. On failure it prints the
error and, when the server answered, the status code and response body.

The probe never fails the process: the exit code is 0 in both cases.`,
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	res := probe.New(newClient()).Run(cmd.Context(), cmd.OutOrStdout())
	if !res.OK {
		logger.WithField("status", res.StatusCode).Debug("probe failed")
	}
	return nil
}
