package settings

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigAllKeysPresent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteConfig(&buf, Defaults()))

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))

	assert.Equal(t, "#282828", raw["bg_color"])
	assert.Equal(t, "#ebdbb2", raw["text_color"])
	assert.Equal(t, "roboto mono", raw["font_family"])
	assert.Equal(t, true, raw["center"])
	assert.Len(t, raw, 4)
}

func TestConfigRoundTrip(t *testing.T) {
	original := Settings{
		BackgroundColor: "#101010",
		TextColor:       "#fefefe",
		FontFamily:      "lato",
		CenterContent:   false,
	}

	var first bytes.Buffer
	require.NoError(t, WriteConfig(&first, original))

	partial, err := ReadConfig(bytes.NewReader(first.Bytes()))
	require.NoError(t, err)

	store := NewStore()
	store.Set(partial)
	assert.Equal(t, original, store.Get())

	var second bytes.Buffer
	require.NoError(t, WriteConfig(&second, store.Get()))
	assert.Equal(t, first.String(), second.String())
}

func TestReadConfigMissingKeysPreserveValues(t *testing.T) {
	store := NewStore()
	center := false
	store.Set(Partial{CenterContent: &center})

	partial, err := ReadConfig(strings.NewReader(`{"bg_color": "#333333"}`))
	require.NoError(t, err)
	store.Set(partial)

	current := store.Get()
	assert.Equal(t, "#333333", current.BackgroundColor)
	assert.False(t, current.CenterContent, "missing center key must not reset the held value")
	assert.Equal(t, "roboto mono", current.FontFamily)
}

func TestReadConfigIgnoresUnknownKeys(t *testing.T) {
	partial, err := ReadConfig(strings.NewReader(`{"bg_color": "#444444", "zoom": 3, "theme": "dark"}`))
	require.NoError(t, err)

	require.NotNil(t, partial.BackgroundColor)
	assert.Equal(t, "#444444", *partial.BackgroundColor)
	assert.Nil(t, partial.TextColor)
	assert.Nil(t, partial.FontFamily)
	assert.Nil(t, partial.CenterContent)
}

func TestReadConfigMalformedJSON(t *testing.T) {
	_, err := ReadConfig(strings.NewReader(`{"bg_color": `))
	require.Error(t, err)

	// A failed load is a no-op: the caller applies nothing.
	store := NewStore()
	before := store.Get()
	if _, err := ReadConfig(strings.NewReader("not json")); err == nil {
		t.Fatal("expected parse error")
	}
	assert.Equal(t, before, store.Get())
}

func TestReadConfigAcceptsArbitraryFont(t *testing.T) {
	partial, err := ReadConfig(strings.NewReader(`{"font_family": "comic sans ms"}`))
	require.NoError(t, err)

	require.NotNil(t, partial.FontFamily)
	assert.Equal(t, "comic sans ms", *partial.FontFamily)
}
