// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/workfront-probe/internal/report"
	"github.com/pdiddy/workfront-probe/internal/workfront"
	"github.com/pdiddy/workfront-probe/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize projects by status and completion",
	Long: `Report fetches projects with one search and prints how many are planned,
current and completed, and how they spread across completion quartiles.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().String("format", string(types.ReportTable), "output format: table, json, or yaml")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	switch types.ReportFormat(format) {
	case types.ReportTable, types.ReportJSON, types.ReportYAML:
	default:
		return fmt.Errorf("unknown format %q: want table, json, or yaml", format)
	}

	ot, err := workfront.LookupObjectType("projects")
	if err != nil {
		return err
	}
	raw, err := newClient().Search(cmd.Context(), ot.ObjCode, ot.Fields)
	if err != nil {
		return fmt.Errorf("fetching projects: %w", err)
	}
	projects, err := workfront.DecodeProjects(raw)
	if err != nil {
		return err
	}

	return report.Write(report.Build(projects), types.ReportFormat(format), cmd.OutOrStdout())
}
