package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	editLine   int
	editCol    int
	editText   string
	editLength int
)

var insertCmd = &cobra.Command{
	Use:   "insert <file>",
	Short: "Insert text at a line and column, then save",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		editor := newEditor()
		if err := editor.Open(ctx, args[0]); err != nil {
			fatal("Error opening file", err)
		}
		offset, err := editor.Offset(editLine, editCol)
		if err != nil {
			fatal("Error locating position", err)
		}
		if err := editor.Insert(offset, editText); err != nil {
			fatal("Error inserting text", err)
		}
		if err := editor.Save(ctx); err != nil {
			fatal("Error saving file", err)
		}
		fmt.Printf("Inserted %d characters at %d:%d\n", len([]rune(editText)), editLine, editCol)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <file>",
	Short: "Delete characters starting at a line and column, then save",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		editor := newEditor()
		if err := editor.Open(ctx, args[0]); err != nil {
			fatal("Error opening file", err)
		}
		offset, err := editor.Offset(editLine, editCol)
		if err != nil {
			fatal("Error locating position", err)
		}
		if err := editor.Delete(offset, editLength); err != nil {
			fatal("Error deleting text", err)
		}
		if err := editor.Save(ctx); err != nil {
			fatal("Error saving file", err)
		}
		fmt.Printf("Deleted %d characters at %d:%d\n", editLength, editLine, editCol)
	},
}

func init() {
	rootCmd.AddCommand(insertCmd, deleteCmd)
	for _, c := range []*cobra.Command{insertCmd, deleteCmd} {
		c.Flags().IntVar(&editLine, "line", 0, "Line (0-based)")
		c.Flags().IntVar(&editCol, "col", 0, "Column in characters (0-based)")
	}
	insertCmd.Flags().StringVarP(&editText, "text", "t", "", "Text to insert")
	_ = insertCmd.MarkFlagRequired("text")
	deleteCmd.Flags().IntVarP(&editLength, "length", "n", 1, "Number of characters to delete")
}
