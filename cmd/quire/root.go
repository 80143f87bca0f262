package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire"
	"github.com/aretw0/quire/pkg/i18n"
)

var (
	verbose bool
	lang    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quire",
	Short: "Plain text editing from the command line",
	Long: `Quire is the document core of a windowed text editor.
These commands drive the same editor the window does: open a file, look at
the lines a viewport would show, apply an edit and save it atomically.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&lang, "lang", "l", "", "Display language (zh-CN, en)")
}

// editorOptions merges the nearest .quire.yaml with the command line flags,
// flags taking precedence.
func editorOptions() ([]quire.Option, error) {
	opts := []quire.Option{quire.WithLogger(slog.Default())}

	if wd, err := os.Getwd(); err == nil {
		if path, err := quire.FindConfig(wd); err == nil {
			cfg, err := quire.LoadConfig(path)
			if err != nil {
				return nil, err
			}
			fileOpts, err := cfg.Options()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			slog.Debug("using config", "path", path)
			opts = append(opts, fileOpts...)
		}
	}

	if lang != "" {
		l, err := i18n.ParseLanguage(lang)
		if err != nil {
			return nil, err
		}
		opts = append(opts, quire.WithLanguage(l))
	}
	return opts, nil
}

// newEditor builds an editor, optionally with extra options.
func newEditor(extra ...quire.Option) *quire.Editor {
	opts, err := editorOptions()
	if err != nil {
		fatal("Error reading configuration", err)
	}
	editor, err := quire.New(append(opts, extra...)...)
	if err != nil {
		fatal("Error initializing editor", err)
	}
	return editor
}
