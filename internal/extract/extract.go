// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract converts Word documents back into the site's content
// store, saving embedded images alongside it.
package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/pdiddy/docbridge/internal/docx"
	"github.com/pdiddy/docbridge/internal/keymap"
	"github.com/pdiddy/docbridge/internal/output"
	"github.com/pdiddy/docbridge/internal/store"
	"github.com/pdiddy/docbridge/pkg/types"
)

const assetsDirName = "assets"

// ContentFileName is the JSON store filename under <output>/assets/.
const ContentFileName = "content.json"

// Summary tallies one extraction run.
type Summary struct {
	Synced  int
	Skipped int
	Failed  int
	Images  int
}

// Total returns the number of documents considered.
func (s Summary) Total() int {
	return s.Synced + s.Skipped + s.Failed
}

// HasFailures reports whether any document failed to process.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// allowedImageExts restricts extracted images to web-ready formats.
var allowedImageExts = map[string]bool{
	"png":  true,
	"jpeg": true,
	"jpg":  true,
	"gif":  true,
}

// ExtractAll processes every *.docx file under cfg.WordDocsDir, merging the
// assembled content into <output>/assets/content.json and saving embedded
// images under <output>/assets/. Documents without an inferable content key
// are offered to resolver; a nil ledger disables sync recording and the
// changed-only skip. A failure on one document never stops the rest.
func ExtractAll(ctx context.Context, cfg types.ExtractConfig, resolver keymap.Resolver, ledger *store.Ledger, p *output.Printer) (Summary, error) {
	if _, err := os.Stat(cfg.WordDocsDir); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(cfg.WordDocsDir, 0o755); err != nil {
			return Summary{}, fmt.Errorf("creating %s: %w", cfg.WordDocsDir, err)
		}
		p.Info("created %s; place .docx files there and run again", cfg.WordDocsDir)
		return Summary{}, nil
	}

	assetsDir := filepath.Join(cfg.OutputDir, assetsDirName)
	if err := os.MkdirAll(assetsDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating %s: %w", assetsDir, err)
	}
	contentPath := filepath.Join(assetsDir, ContentFileName)

	paths, err := filepath.Glob(filepath.Join(cfg.WordDocsDir, "*.docx"))
	if err != nil {
		return Summary{}, fmt.Errorf("scanning %s: %w", cfg.WordDocsDir, err)
	}
	if len(paths) == 0 {
		p.Info("no .docx files found in %s", cfg.WordDocsDir)
		return Summary{}, nil
	}
	p.Print("Found %d Word document(s)\n", len(paths))

	var summary Summary
	for _, path := range paths {
		name := filepath.Base(path)

		info, err := os.Stat(path)
		if err != nil {
			p.Error("processing %s: %v", name, err)
			summary.Failed++
			continue
		}
		modTime := store.FormatModTime(info.ModTime())

		if cfg.ChangedOnly && ledger != nil {
			if unchanged, err := ledger.Unchanged(ctx, name, modTime); err == nil && unchanged {
				p.Print("skipped %s (unchanged)", name)
				summary.Skipped++
				continue
			}
		}

		p.Print("Processing: %s", name)
		res, err := processDoc(path, assetsDir, contentPath, resolver, p)
		if err != nil {
			p.Error("processing %s: %v", name, err)
			summary.Failed++
			continue
		}
		if res.skipped {
			summary.Skipped++
			continue
		}

		summary.Synced++
		summary.Images += res.images
		if ledger != nil {
			rec := store.SyncRecord{
				DocName:      name,
				ContentKey:   res.key,
				FileModTime:  modTime,
				SectionCount: res.sections,
				ImageCount:   res.images,
			}
			if err := ledger.RecordSync(ctx, rec); err != nil {
				p.Warning("ledger update failed for %s: %v", name, err)
			}
		}
		p.Success("Successfully processed '%s' -> '%s'", name, res.key)
	}

	p.Print("\nsynced: %d, skipped: %d, failed: %d", summary.Synced, summary.Skipped, summary.Failed)
	return summary, nil
}

type docResult struct {
	key      string
	skipped  bool
	images   int
	sections int
}

// processDoc handles one document end to end. A panic while reading
// malformed input is converted into an error carrying the stack, so the
// batch loop survives it.
func processDoc(path, assetsDir, contentPath string, resolver keymap.Resolver, p *output.Printer) (res docResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()

	doc, err := docx.Open(path)
	if err != nil {
		return res, err
	}

	a := NewAssembler()
	for _, para := range doc.Paragraphs {
		a.Add(para)
	}
	content := a.Result()

	res.images = saveImages(doc.Images, assetsDir, p)
	if res.images > 0 {
		p.Print("  extracted %d image(s)", res.images)
	}

	name := filepath.Base(path)
	key, ok := keymap.Lookup(name)
	if !ok {
		p.Warning("no content key inferred from %q", keymap.Stem(name))
		key, ok = resolver.ResolveKey(name)
		if !ok {
			res.skipped = true
			return res, nil
		}
	}

	cs, err := store.Load(contentPath)
	if err != nil {
		return res, err
	}
	store.Merge(cs, key, content)
	if err := store.Save(cs, contentPath); err != nil {
		return res, err
	}
	p.Print("  updated %s with content for %q", contentPath, key)

	res.key = key
	res.sections = len(content.Sections)
	return res, nil
}

// saveImages writes the allowed image parts into assetsDir. The filename
// index counts saved images only, so a failed or filtered part does not
// consume an index. A single bad image is reported and skipped.
func saveImages(parts []docx.ImagePart, assetsDir string, p *output.Printer) int {
	saved := 0
	for _, part := range parts {
		ext := part.Ext()
		if !allowedImageExts[ext] {
			continue
		}
		name := fmt.Sprintf("extracted_%d_%s.%s", saved, part.RelID, ext)
		if err := os.WriteFile(filepath.Join(assetsDir, name), part.Data, 0o644); err != nil {
			p.Warning("could not extract image %s: %v", part.RelID, err)
			continue
		}
		saved++
	}
	return saved
}
