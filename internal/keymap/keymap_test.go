// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantKey  string
		wantOK   bool
	}{
		{"tectonics keyword", "Plate-Tectonics-Earthquakes.docx", "tectonics", true},
		{"no keyword", "Random-Unrelated.docx", "", false},
		{"case insensitive", "ABOUT-Us.docx", "about", true},
		{"full path uses stem", "/data/word-docs/Weathering-Processes.docx", "weathering", true},
		{"extension not consulted", "notes.maps", "", false},
		{"reference maps to plural key", "Reference-List.docx", "references", true},
		{"erosion aliases weathering", "Coastal-Erosion.docx", "weathering", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := Lookup(tt.filename)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestLookupTableOrderWins(t *testing.T) {
	// "location" (maps) precedes "earthquake" (tectonics) in the table, so a
	// stem containing both resolves by order, not specificity.
	key, ok := Lookup("Location-Of-Earthquakes.docx")
	assert.True(t, ok)
	assert.Equal(t, "maps", key)

	// "ocean" (fluvial) precedes "climate".
	key, ok = Lookup("Ocean-Climate-Links.docx")
	assert.True(t, ok)
	assert.Equal(t, "fluvial", key)
}

func TestStem(t *testing.T) {
	assert.Equal(t, "Maps-Cartography", Stem("word-docs/Maps-Cartography.docx"))
	assert.Equal(t, "plain", Stem("plain"))
}

func TestKnownKeys(t *testing.T) {
	want := []string{"maps", "tectonics", "weathering", "fluvial", "climate", "about", "home", "references"}
	assert.Equal(t, want, KnownKeys())
}

func TestSkipResolver(t *testing.T) {
	key, ok := Skip.ResolveKey("anything.docx")
	assert.False(t, ok)
	assert.Empty(t, key)
}
