package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fit2gpx/internal/babel"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of fit2gpx and the converter",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fit2gpx %s\n", version)

		gb := babel.New(stringSetting(cmd, "babel", "babel.binary", ""))
		if v, err := gb.Version(); err == nil {
			fmt.Println(v)
		} else {
			fmt.Printf("%s: unavailable (%v)\n", gb.Binary(), err)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
