// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fit2gpx/internal/catalog"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List conversions recorded in the catalog",
	Long: `History reads the catalog database written by runs with --record and
lists recorded conversions, newest first. Use --json for machine output or
--export to write the full history to a YAML or JSON file.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 50, "maximum number of entries to list")
	historyCmd.Flags().Bool("json", false, "print entries as JSON")
	historyCmd.Flags().String("export", "", "write the full history to this file (.json for JSON, otherwise YAML)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path := stringSetting(cmd, "db", "catalog.path", catalog.DefaultPath)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("no catalog at %s: run conversions with --record first", path)
	}

	cat, err := catalog.Open(path)
	if err != nil {
		return err
	}
	defer cat.Close()

	ctx := context.Background()

	if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
		if err := cat.Export(ctx, exportPath); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Exported history to", exportPath)
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	recs, err := cat.History(ctx, limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	if len(recs) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-9s  %8s  %s\n", "Recorded", "Status", "Time", "Source")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 70))
	for _, r := range recs {
		fmt.Fprintf(os.Stdout, "%-20s  %-9s  %6dms  %s\n",
			r.RecordedAt.Format("2006-01-02 15:04:05"), r.Status, r.DurationMS, r.Source)
	}
	return nil
}
