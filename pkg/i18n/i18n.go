// Package i18n maps translation keys to the strings of the active language.
//
// There is no package-level state: callers load a Catalog once and pass the
// Table they need to whatever renders text.
package i18n

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed translations.yaml
var builtin []byte

// Language identifies a translation set.
type Language string

const (
	ChineseSimplified Language = "zh-CN"
	English           Language = "en"
)

// DefaultLanguage is used when none is configured.
const DefaultLanguage = ChineseSimplified

// ParseLanguage accepts the canonical tags and a few common aliases.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zh", "zh-cn", "zh_cn", "zh-hans", "cn":
		return ChineseSimplified, nil
	case "en", "en-us", "en_us", "en-gb", "english":
		return English, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// Key names one translatable string.
type Key string

const (
	MenuFile Key = "menu.file"
	MenuEdit Key = "menu.edit"
	MenuView Key = "menu.view"

	FileOpen   Key = "file.open"
	FileSave   Key = "file.save"
	FileSaveAs Key = "file.save_as"
	FileExit   Key = "file.exit"

	EditUndo Key = "edit.undo"
	EditRedo Key = "edit.redo"

	ViewTheme Key = "view.theme"

	ToolbarOpen Key = "toolbar.open"
	ToolbarSave Key = "toolbar.save"
	ToolbarUndo Key = "toolbar.undo"
	ToolbarRedo Key = "toolbar.redo"
	ToolbarFind Key = "toolbar.find"

	TabUntitled Key = "tab.untitled"
	TabNew      Key = "tab.new"

	StatusLine     Key = "status.line"
	StatusColumn   Key = "status.column"
	StatusEncoding Key = "status.encoding"
	StatusFileType Key = "status.file_type"
	StatusReady    Key = "status.ready"
	StatusModified Key = "status.modified"

	DialogOpenTitle  Key = "dialog.open_title"
	DialogSaveTitle  Key = "dialog.save_title"
	DialogFilterAll  Key = "dialog.filter_all"
	DialogFilterText Key = "dialog.filter_text"

	Yes    Key = "common.yes"
	No     Key = "common.no"
	OK     Key = "common.ok"
	Cancel Key = "common.cancel"
)

// Catalog holds every loaded language.
type Catalog struct {
	tables map[Language]map[Key]string
}

// Load parses the built-in translations.
func Load() (*Catalog, error) {
	return LoadFrom(bytes.NewReader(builtin))
}

// LoadFrom parses translations from YAML shaped as language -> key -> text.
func LoadFrom(r io.Reader) (*Catalog, error) {
	var raw map[Language]map[Key]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid translations: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("invalid translations: no languages")
	}
	return &Catalog{tables: raw}, nil
}

// Languages returns the loaded languages, sorted.
func (c *Catalog) Languages() []Language {
	out := make([]Language, 0, len(c.tables))
	for lang := range c.tables {
		out = append(out, lang)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Has reports whether lang was loaded.
func (c *Catalog) Has(lang Language) bool {
	_, ok := c.tables[lang]
	return ok
}

// Table returns the table for lang. Unknown languages yield a table that
// answers every key with the key itself.
func (c *Catalog) Table(lang Language) Table {
	return Table{lang: lang, entries: c.tables[lang]}
}

// Table is an immutable view of one language.
type Table struct {
	lang    Language
	entries map[Key]string
}

// Language returns the table's language.
func (t Table) Language() Language { return t.lang }

// Translate returns the text for key, or the key itself when missing.
func (t Table) Translate(key Key) string {
	if s, ok := t.entries[key]; ok {
		return s
	}
	return string(key)
}

// TranslateMulti translates each key and joins them with a space.
func (t Table) TranslateMulti(keys ...Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = t.Translate(k)
	}
	return strings.Join(parts, " ")
}

// Keys returns the keys present in the table, sorted.
func (t Table) Keys() []Key {
	out := make([]Key, 0, len(t.entries))
	for k := range t.entries {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
