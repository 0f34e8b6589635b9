// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fit2gpx/internal/scan"
	"github.com/pdiddy/fit2gpx/pkg/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Find FIT files that have not been converted yet",
	Long: `Scan walks a directory tree and lists the FIT files whose .gpx
counterpart is missing. Candidates are matched by their .fit extension and
cross-checked against the FIT header signature, so a renamed non-FIT file
is not reported.

With --convert the pending files are converted in one batch, under the
same rules as the root command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Bool("convert", false, "convert the pending files instead of listing them")
	scanCmd.Flags().Bool("ext-only", false, "trust the .fit extension without checking the header")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	extOnly, _ := cmd.Flags().GetBool("ext-only")
	files, err := scan.Files(root, types.ScanConfig{Sniff: !extOnly})
	if err != nil {
		return err
	}
	pending := scan.Pending(files)

	doConvert, _ := cmd.Flags().GetBool("convert")
	if doConvert {
		if len(pending) == 0 {
			return nil
		}
		return convertPaths(cmd, pending)
	}

	for _, f := range pending {
		fmt.Println(f)
	}
	if verbose := boolSetting(cmd, "verbose", "verbose"); verbose {
		fmt.Fprintf(os.Stderr, "%d FIT file(s), %d pending\n", len(files), len(pending))
	}
	return nil
}
