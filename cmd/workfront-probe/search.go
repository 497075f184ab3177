// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/workfront-probe/internal/workfront"
)

var searchCmd = &cobra.Command{
	Use:   "search <object>",
	Short: "Search one Workfront object type",
	Long: `Search runs a single search for an object type and prints the results.
Known object types: ` + strings.Join(workfront.ObjectTypeNames(), ", ") + `.

With --session the command first logs in with the configured username and
authenticates the search with the returned session ID instead of the API key.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("fields", "", "comma-separated fields to request (default: per object type)")
	searchCmd.Flags().Bool("json", false, "output the raw response as indented JSON")
	searchCmd.Flags().Bool("session", false, "authenticate with a login session instead of the API key")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ot, err := workfront.LookupObjectType(args[0])
	if err != nil {
		return err
	}
	fields, _ := cmd.Flags().GetString("fields")
	if fields == "" {
		fields = ot.Fields
	}

	client := newClient()
	ctx := cmd.Context()

	var raw json.RawMessage
	if useSession, _ := cmd.Flags().GetBool("session"); useSession {
		cfg := workfrontConfig()
		if cfg.Username == "" {
			return fmt.Errorf("--session requires a username: set WORKFRONT_USERNAME")
		}
		session, err := client.Login(ctx, cfg.Username)
		if err != nil {
			return fmt.Errorf("logging in: %w", err)
		}
		logger.Debugf("got session for %s", cfg.Username)
		raw, err = client.SearchWithSession(ctx, session.SessionID, ot.ObjCode, fields)
		if err != nil {
			return fmt.Errorf("searching %s: %w", ot.Name, err)
		}
	} else {
		raw, err = client.Search(ctx, ot.ObjCode, fields)
		if err != nil {
			return fmt.Errorf("searching %s: %w", ot.Name, err)
		}
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, bytes.TrimSpace(raw), "", "  "); err != nil {
			return fmt.Errorf("parsing %s response: %w", ot.Name, err)
		}
		fmt.Fprintln(out, pretty.String())
		return nil
	}

	items, err := workfront.DecodeItems(raw)
	if err != nil {
		return err
	}
	workfront.FormatTable(items, workfront.Columns(fields), out)
	return nil
}
