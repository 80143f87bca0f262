package platform

import (
	"fmt"

	"github.com/aretw0/quire/pkg/adapters/fs"
	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/i18n"
)

// New assembles an Editor from options.
//
//	editor, err := quire.New(quire.WithLanguage(i18n.English))
//
// Unless WithFileSystem is given, files are read from and written to the
// local disk.
func New(opts ...Option) (*core.Editor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	table, err := resolveTable(o)
	if err != nil {
		return nil, err
	}

	fileSystem := o.fileSystem
	if fileSystem == nil {
		fileSystem = fs.New(fs.Config{
			Logger:       o.logger,
			ReadOnly:     o.readOnly,
			ErrorHandler: o.errorHandler,
		})
	}

	return core.NewEditor(fileSystem, core.Config{
		Picker:       o.picker,
		Table:        table,
		Logger:       o.logger,
		EventBuffer:  o.eventBuffer,
		ErrorHandler: o.errorHandler,
		ReadOnly:     o.readOnly,
	}), nil
}

func resolveTable(o *options) (i18n.Table, error) {
	if o.table != nil {
		return *o.table, nil
	}
	catalog, err := i18n.Load()
	if err != nil {
		return i18n.Table{}, err
	}
	lang := o.language
	if lang == "" {
		lang = i18n.DefaultLanguage
	}
	if !catalog.Has(lang) {
		return i18n.Table{}, fmt.Errorf("no translations for language %q", lang)
	}
	return catalog.Table(lang), nil
}
