package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire/pkg/adapters/fs"
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List text files the open dialog would offer",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		files, err := fs.ListText(root)
		if err != nil {
			fatal("Error listing files", err)
		}
		for _, f := range files {
			fmt.Println(f)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
