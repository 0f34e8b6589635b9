// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/fit2gpx/pkg/types"
)

// Flags win over config file values, which win over defaults.

func stringSetting(cmd *cobra.Command, flag, key, def string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return def
}

func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetBool(flag)
		return v
	}
	return viper.GetBool(key)
}

// convertConfig resolves the conversion settings for cmd.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	return types.ConvertConfig{
		Babel:       stringSetting(cmd, "babel", "babel.binary", ""),
		Force:       boolSetting(cmd, "force", "force"),
		Verbose:     boolSetting(cmd, "verbose", "verbose"),
		CatalogPath: stringSetting(cmd, "db", "catalog.path", ""),
	}
}
