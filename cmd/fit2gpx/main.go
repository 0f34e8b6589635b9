// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the fit2gpx CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/fit2gpx/internal/babel"
	"github.com/pdiddy/fit2gpx/internal/catalog"
	"github.com/pdiddy/fit2gpx/internal/convert"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd performs the batch conversion itself, so plain
// `fit2gpx ride1.fit ride2.fit` works without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "fit2gpx [fit-file...]",
	Short: "Convert FIT activity files to GPX with gpsbabel",
	Long: `fit2gpx converts Garmin FIT activity files to GPX by invoking gpsbabel
once per input file. An input whose .gpx counterpart already exists is
skipped, so re-running over the same files only converts what is new.

The output for each input sits next to it, named <input>.gpx. The first
failing conversion aborts the run with a non-zero exit; GPX files written
earlier in the run are kept.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./fit2gpx.yaml or ~/.config/fit2gpx/config.yaml)")
	rootCmd.PersistentFlags().String("babel", "", "converter binary name or path (default: gpsbabel on PATH)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "report skipped files and a run summary on stderr")
	rootCmd.PersistentFlags().Bool("force", false, "convert even when the output file already exists")
	rootCmd.PersistentFlags().Bool("record", false, "record conversion outcomes in the catalog database")
	rootCmd.PersistentFlags().String("db", "", "catalog database path (default: "+catalog.DefaultPath+")")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("fit2gpx")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "fit2gpx"))
		}
	}

	viper.SetEnvPrefix("FIT2GPX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	// Nothing to convert is a successful run.
	if len(args) == 0 {
		return nil
	}
	return convertPaths(cmd, args)
}

// convertPaths runs the batch converter over paths with the settings from
// cmd's persistent flags and the config file. Shared by the root command
// and `scan --convert`.
func convertPaths(cmd *cobra.Command, paths []string) error {
	cfg := convertConfig(cmd)

	gb := babel.New(cfg.Babel)
	if err := gb.Available(); err != nil {
		return err
	}

	opts := convert.Options{
		Force:    cfg.Force,
		Verbose:  cfg.Verbose,
		Progress: os.Stdout,
		Notes:    os.Stderr,
	}

	if recordOn, _ := cmd.Flags().GetBool("record"); recordOn {
		cat, err := catalog.Open(cfg.CatalogPath)
		if err != nil {
			// The catalog is an observability aid; losing it must not
			// fail the conversion run.
			fmt.Fprintf(os.Stderr, "warning: catalog disabled: %v\n", err)
		} else {
			defer cat.Close()
			opts.Recorder = cat
		}
	}

	result, err := convert.Batch(gb, paths, opts)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "%d converted, %d skipped\n", result.Converted, result.Skipped)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
