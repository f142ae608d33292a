// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keymap derives content-store keys from document filenames.
package keymap

import (
	"path/filepath"
	"strings"
)

type mapping struct {
	keyword string
	key     string
}

// keyTable is scanned in declaration order; the first keyword found as a
// substring of the lowercased filename stem wins. Order, not specificity,
// decides when several keywords match.
var keyTable = []mapping{
	{"maps", "maps"},
	{"location", "maps"},
	{"cartographer", "maps"},
	{"tectonic", "tectonics"},
	{"earthquake", "tectonics"},
	{"volcano", "tectonics"},
	{"weathering", "weathering"},
	{"erosion", "weathering"},
	{"mass", "weathering"},
	{"fluvial", "fluvial"},
	{"ocean", "fluvial"},
	{"coastline", "fluvial"},
	{"climate", "climate"},
	{"biome", "climate"},
	{"about", "about"},
	{"home", "home"},
	{"reference", "references"},
}

// Lookup derives the content key for a document filename by scanning the
// keyword table against the lowercased stem. The boolean reports whether any
// keyword matched; an unmatched filename is the caller's problem to resolve,
// never silently defaulted.
func Lookup(filename string) (string, bool) {
	stem := strings.ToLower(Stem(filename))
	for _, m := range keyTable {
		if strings.Contains(stem, m.keyword) {
			return m.key, true
		}
	}
	return "", false
}

// Stem returns the base name of path with its extension removed.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// KnownKeys returns the distinct content keys the table can produce, in
// table order.
func KnownKeys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, m := range keyTable {
		if !seen[m.key] {
			seen[m.key] = true
			keys = append(keys, m.key)
		}
	}
	return keys
}

// A Resolver supplies a content key for filenames the keyword table cannot
// map. Returning ok=false skips the file.
type Resolver interface {
	ResolveKey(filename string) (key string, ok bool)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(filename string) (string, bool)

// ResolveKey calls f.
func (f ResolverFunc) ResolveKey(filename string) (string, bool) {
	return f(filename)
}

// Skip is a Resolver that never supplies a key, for non-interactive runs.
var Skip Resolver = ResolverFunc(func(string) (string, bool) {
	return "", false
})
