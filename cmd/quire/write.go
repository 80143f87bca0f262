package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Use:   "write <file>",
	Short: "Replace a file with standard input",
	Long: `Read all of standard input as the new document content and save it to
<file>, creating it if needed. The write is atomic: on failure the previous
file is left as it was.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatal("Error reading stdin", err)
		}

		editor := newEditor()
		editor.SetContent(string(data))
		if err := editor.SaveAs(context.Background(), args[0]); err != nil {
			fatal("Error saving file", err)
		}
		fmt.Printf("Saved %s (%d lines)\n", editor.FileName(), editor.LineCount())
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
}
