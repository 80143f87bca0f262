package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire/pkg/i18n"
)

var stringsCmd = &cobra.Command{
	Use:   "strings",
	Short: "Print the interface strings of the display language",
	Run: func(cmd *cobra.Command, args []string) {
		catalog, err := i18n.Load()
		if err != nil {
			fatal("Error loading translations", err)
		}
		l := i18n.DefaultLanguage
		if lang != "" {
			if l, err = i18n.ParseLanguage(lang); err != nil {
				fatal("Error parsing language", err)
			}
		}
		table := catalog.Table(l)
		for _, key := range table.Keys() {
			fmt.Printf("%s\t%s\n", key, table.Translate(key))
		}
	},
}

func init() {
	rootCmd.AddCommand(stringsCmd)
}
