package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of quire",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quire version %s\n", quire.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
