// Package quire is the composition root for the quire text editor core.
//
// It wires the editor service (pkg/core) to its adapters: the local disk file
// system (pkg/adapters/fs) and the translation tables (pkg/i18n). A windowed
// front end owns one Editor, forwards user actions to it as method calls or
// Commands, and asks it for the visible lines on every frame.
//
// Text is held in a persistent rope (pkg/rope), so edits and line lookups
// stay cheap on large files and a renderer never needs a full copy of the
// content.
//
// Usage:
//
//	editor, err := quire.New(
//		quire.WithLanguage(i18n.English),
//		quire.WithLogger(logger),
//	)
//
//	if err := editor.Open(ctx, "notes.txt"); err != nil { ... }
//	for _, row := range editor.Window(top, rows) {
//		draw(row)
//	}
package quire
