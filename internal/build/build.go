// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package build renders the site's HTML pages into Word documents.
package build

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/docbridge/internal/docx"
	"github.com/pdiddy/docbridge/internal/htmldoc"
	"github.com/pdiddy/docbridge/internal/output"
	"github.com/pdiddy/docbridge/pkg/types"
)

// Summary tallies one build run.
type Summary struct {
	Built   int
	Skipped int
	Failed  int
}

// Total returns the number of pages considered.
func (s Summary) Total() int {
	return s.Built + s.Skipped + s.Failed
}

// HasFailures reports whether any page failed to build.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// BuildAll renders every manifest page found under cfg.HTMLDir into
// cfg.WordDocsDir, creating the output directory if needed. Missing inputs
// are skipped and a failure on one page never stops the rest.
func BuildAll(cfg types.BuildConfig, pages []Page, p *output.Printer) (Summary, error) {
	if err := os.MkdirAll(cfg.WordDocsDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating %s: %w", cfg.WordDocsDir, err)
	}

	var summary Summary
	for _, page := range pages {
		htmlPath := filepath.Join(cfg.HTMLDir, page.HTML)
		if _, err := os.Stat(htmlPath); errors.Is(err, os.ErrNotExist) {
			p.Warning("Skipping: %s (not found)", page.HTML)
			summary.Skipped++
			continue
		}

		p.Print("Processing: %s", page.HTML)
		n, err := BuildPage(htmlPath, filepath.Join(cfg.WordDocsDir, page.Docx))
		if err != nil {
			p.Error("processing %s: %v", page.HTML, err)
			summary.Failed++
			continue
		}
		p.Success("Created: %s (%d paragraphs)", page.Docx, n)
		summary.Built++
	}

	p.Print("\nbuilt: %d, skipped: %d, failed: %d", summary.Built, summary.Skipped, summary.Failed)
	return summary, nil
}

// BuildPage converts one HTML file into a Word document and returns the
// number of paragraphs rendered. A panic while processing the page is
// converted into an error carrying the stack, so the caller's batch loop
// survives malformed input.
func BuildPage(htmlPath, docxPath string) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()

	data, err := os.ReadFile(htmlPath)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", htmlPath, err)
	}
	blocks, err := htmldoc.Extract(string(data))
	if err != nil {
		return 0, fmt.Errorf("extracting content: %w", err)
	}

	w := docx.NewWriter()
	for _, b := range blocks {
		text := cleanText(b.Text)
		if text == "" {
			continue
		}
		if isNavRemnant(text) {
			continue
		}
		switch {
		case b.Kind.HeadingLevel() > 0:
			w.AddHeading(text, b.Kind.HeadingLevel())
		case b.Kind == types.BlockQuote:
			w.AddQuote(text)
		case b.Kind == types.BlockListItem:
			w.AddListItem(text)
		default:
			w.AddParagraph(text)
		}
	}

	if err := w.Save(docxPath); err != nil {
		return 0, err
	}
	return w.Len(), nil
}

// cleanText strips inline emphasis markers and re-collapses whitespace.
// Double markers go first so a bold span does not leave stray asterisks.
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "*", "")
	return strings.Join(strings.Fields(text), " ")
}

// navPhrases flags navigation and footer remnants that leak into the
// content region. Matching lowercases the candidate text only, so the
// mis-encoded final entry never fires.
var navPhrases = []string{
	"home", "about", "references", "earth processes",
	"copyright", "arizona study", "Â©",
}

// isNavRemnant reports whether text is a short navigation or footer
// remnant: it contains a known phrase and runs under 50 characters. Long
// text survives even when a phrase matches, so real prose mentioning
// "home" or "about" is kept.
func isNavRemnant(text string) bool {
	lowered := strings.ToLower(text)
	for _, phrase := range navPhrases {
		if strings.Contains(lowered, phrase) {
			return utf8.RuneCountInString(text) < 50
		}
	}
	return false
}
