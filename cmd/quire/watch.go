package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Report changes made to a file by other programs",
	Long:  `Open a file and print a line each time it changes on disk, until interrupted.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		editor := newEditor()
		if err := editor.Open(ctx, args[0]); err != nil {
			fatal("Error opening file", err)
		}
		changes, err := editor.Watch(ctx)
		if err != nil {
			fatal("Error watching file", err)
		}

		src := lifecycle.NewSource(changes)
		if err := src.Start(ctx); err != nil {
			fatal("Error starting event source", err)
		}
		fmt.Printf("Watching %s (Ctrl+C to stop)\n", editor.FileName())
		for e := range src.Events() {
			if err := editor.Reload(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Error reloading: %v\n", err)
				continue
			}
			fmt.Printf("%s (%d lines)\n", e, editor.LineCount())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
