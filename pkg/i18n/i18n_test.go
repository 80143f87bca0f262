package i18n_test

import (
	"strings"
	"testing"

	"github.com/aretw0/quire/pkg/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Builtin(t *testing.T) {
	c, err := i18n.Load()
	require.NoError(t, err)
	assert.Equal(t, []i18n.Language{i18n.English, i18n.ChineseSimplified}, c.Languages())

	zh := c.Table(i18n.ChineseSimplified)
	en := c.Table(i18n.English)
	assert.Equal(t, "[未命名]", zh.Translate(i18n.TabUntitled))
	assert.Equal(t, "[Untitled]", en.Translate(i18n.TabUntitled))
	assert.Equal(t, "Yes", en.Translate(i18n.Yes))
	assert.Equal(t, "就绪", zh.Translate(i18n.StatusReady))
}

func TestBuiltin_LanguagesShareKeys(t *testing.T) {
	c, err := i18n.Load()
	require.NoError(t, err)
	assert.Equal(t, c.Table(i18n.English).Keys(), c.Table(i18n.ChineseSimplified).Keys())
}

func TestTranslate_FallsBackToKey(t *testing.T) {
	c, err := i18n.Load()
	require.NoError(t, err)
	assert.Equal(t, "no.such.key", c.Table(i18n.English).Translate("no.such.key"))
	assert.Equal(t, "menu.file", c.Table("fr").Translate(i18n.MenuFile))
	assert.False(t, c.Has("fr"))
	assert.True(t, c.Has(i18n.English))
}

func TestTranslateMulti(t *testing.T) {
	c, err := i18n.Load()
	require.NoError(t, err)
	en := c.Table(i18n.English)
	assert.Equal(t, "File Open", en.TranslateMulti(i18n.MenuFile, i18n.FileOpen))
	assert.Equal(t, "", en.TranslateMulti())
}

func TestLoadFrom_Errors(t *testing.T) {
	_, err := i18n.LoadFrom(strings.NewReader("[1, 2]"))
	assert.Error(t, err)
	_, err = i18n.LoadFrom(strings.NewReader("{}"))
	assert.Error(t, err)
}

func TestParseLanguage(t *testing.T) {
	cases := map[string]i18n.Language{
		"zh":    i18n.ChineseSimplified,
		"zh-CN": i18n.ChineseSimplified,
		"EN":    i18n.English,
		" en ":  i18n.English,
	}
	for in, want := range cases {
		got, err := i18n.ParseLanguage(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := i18n.ParseLanguage("klingon")
	assert.Error(t, err)
}
