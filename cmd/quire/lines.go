package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	linesFrom   int
	linesCount  int
	linesNumber bool
)

var linesCmd = &cobra.Command{
	Use:   "lines <file>",
	Short: "Print a window of lines",
	Long: `Print the lines a viewport starting at --from would show. Only the
requested lines are extracted; the rest of the file is never copied.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		editor := newEditor()
		if err := editor.Open(context.Background(), args[0]); err != nil {
			fatal("Error opening file", err)
		}

		count := linesCount
		if count <= 0 {
			count = editor.LineCount()
		}
		width := len(fmt.Sprint(editor.LineCount()))
		for i, row := range editor.Window(linesFrom, count) {
			if linesNumber {
				fmt.Printf("%*d  %s\n", width, linesFrom+i+1, row)
				continue
			}
			fmt.Println(row)
		}
	},
}

func init() {
	rootCmd.AddCommand(linesCmd)
	linesCmd.Flags().IntVar(&linesFrom, "from", 0, "First line to print (0-based)")
	linesCmd.Flags().IntVarP(&linesCount, "count", "n", 0, "Number of lines to print (0 = all)")
	linesCmd.Flags().BoolVar(&linesNumber, "number", false, "Prefix each line with its 1-based number")
}
