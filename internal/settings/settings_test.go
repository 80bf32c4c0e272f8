package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := Defaults()

	assert.Equal(t, "#282828", s.BackgroundColor)
	assert.Equal(t, "#ebdbb2", s.TextColor)
	assert.Equal(t, "roboto mono", s.FontFamily)
	assert.True(t, s.CenterContent)
}

func TestStoreSetMergesPartial(t *testing.T) {
	store := NewStore()

	textColor := "#ffffff"
	store.Set(Partial{TextColor: &textColor})

	current := store.Get()
	assert.Equal(t, "#ffffff", current.TextColor)
	assert.Equal(t, "#282828", current.BackgroundColor)
	assert.Equal(t, "roboto mono", current.FontFamily)
	assert.True(t, current.CenterContent)
}

func TestStoreReset(t *testing.T) {
	store := NewStore()

	bg := "#000000"
	center := false
	store.Set(Partial{BackgroundColor: &bg, CenterContent: &center})
	require.Equal(t, "#000000", store.Get().BackgroundColor)

	store.Reset()
	assert.Equal(t, Defaults(), store.Get())
}

func TestStoreNotifiesSubscribers(t *testing.T) {
	store := NewStore()

	var got []Settings
	unsubscribe := store.Subscribe(func(s Settings) {
		got = append(got, s)
	})

	font := "fira code"
	store.Set(Partial{FontFamily: &font})
	require.Len(t, got, 1)
	assert.Equal(t, "fira code", got[0].FontFamily)

	store.Reset()
	require.Len(t, got, 2)
	assert.Equal(t, Defaults(), got[1])

	unsubscribe()
	store.Set(Partial{FontFamily: &font})
	assert.Len(t, got, 2)
}

func TestStoreAcceptsUnknownFont(t *testing.T) {
	store := NewStore()

	font := "definitely not a real font"
	store.Set(Partial{FontFamily: &font})

	assert.Equal(t, font, store.Get().FontFamily)
}
