// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists extracted document content. The content store
// itself is a JSON map keyed by content key; alongside it a SQLite ledger
// records one row per synced document so unchanged files can be skipped and
// past runs inspected.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/pdiddy/docbridge/pkg/types"
)

// Load reads the content store at path. A missing file yields an empty
// store so first runs need no bootstrap step.
func Load(path string) (types.ContentStore, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return types.ContentStore{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var cs types.ContentStore
	if err := json.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cs == nil {
		cs = types.ContentStore{}
	}
	return cs, nil
}

// Merge folds content for key into the store without disturbing other keys.
// For an existing key, title and intro are overwritten only when the new
// content provides non-empty values, and sections are replaced wholesale
// only when the new section list is non-empty. Merging identical content
// twice leaves the store unchanged.
func Merge(cs types.ContentStore, key string, content types.DocumentContent) {
	existing, ok := cs[key]
	if !ok {
		cs[key] = content
		return
	}
	if content.Title != "" {
		existing.Title = content.Title
	}
	if content.Intro != "" {
		existing.Intro = content.Intro
	}
	if len(content.Sections) > 0 {
		existing.Sections = content.Sections
	}
	cs[key] = existing
}

// Save writes the whole store to path, pretty-printed with a two-space
// indent and non-ASCII characters preserved literally.
func Save(cs types.ContentStore, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(cs); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// Keys returns the store's content keys in sorted order.
func Keys(cs types.ContentStore) []string {
	keys := make([]string, 0, len(cs))
	for k := range cs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
