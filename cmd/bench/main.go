package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/quire"
	"github.com/aretw0/quire/pkg/i18n"
)

func main() {
	lines := flag.Int("lines", 200000, "Number of lines to generate")
	edits := flag.Int("edits", 10000, "Number of random single-character inserts")
	rows := flag.Int("rows", 50, "Viewport height in lines")
	keep := flag.Bool("keep", false, "Keep the generated file after running")
	flag.Parse()

	// 1. Generate
	benchDir, err := os.MkdirTemp("", "quire_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	path := filepath.Join(benchDir, "large.txt")
	fmt.Printf("Generating %d lines in %s...\n", *lines, path)
	startGen := time.Now()
	var sb strings.Builder
	for i := 0; i < *lines; i++ {
		fmt.Fprintf(&sb, "%07d the quick brown fox jumps over the lazy dog 敏捷的狐狸\n", i)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		panic(err)
	}
	fmt.Printf("Generation took: %v (%d bytes)\n", time.Since(startGen), sb.Len())

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	editor, err := quire.New(quire.WithLogger(logger), quire.WithLanguage(i18n.English))
	if err != nil {
		panic(err)
	}
	ctx := context.TODO()

	// 2. Open
	startOpen := time.Now()
	if err := editor.Open(ctx, path); err != nil {
		panic(err)
	}
	openTook := time.Since(startOpen)

	// 3. Scroll: one frame per viewport position, top to bottom
	total := editor.LineCount()
	startScroll := time.Now()
	frames := 0
	for top := 0; top < total; top += *rows {
		_ = editor.Window(top, *rows)
		frames++
	}
	scrollTook := time.Since(startScroll)

	// 4. Edit at random positions
	rng := rand.New(rand.NewPCG(1, 2))
	startEdit := time.Now()
	for i := 0; i < *edits; i++ {
		line := rng.IntN(editor.LineCount())
		offset, err := editor.Offset(line, 0)
		if err != nil {
			panic(err)
		}
		if err := editor.Insert(offset, "x"); err != nil {
			panic(err)
		}
	}
	editTook := time.Since(startEdit)

	// 5. Save
	startSave := time.Now()
	if err := editor.Save(ctx); err != nil {
		panic(err)
	}
	saveTook := time.Since(startSave)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d lines):\n", total)
	fmt.Printf("  Open:   %v\n", openTook)
	fmt.Printf("  Scroll: %v (%d frames, %v/frame)\n", scrollTook, frames, scrollTook/time.Duration(max(frames, 1)))
	fmt.Printf("  Edit:   %v (%d inserts, %v/insert)\n", editTook, *edits, editTook/time.Duration(max(*edits, 1)))
	fmt.Printf("  Save:   %v\n", saveTook)
	fmt.Printf("--------------------------------------------------\n")
}
