// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package htmldoc extracts ordered content blocks from raw HTML pages.
//
// Extraction selects the primary content region (article, then main, then
// body, then the whole document) and walks its parsed node tree, flushing
// accumulated inline text at block-element boundaries. Script and style
// subtrees and comments contribute nothing.
package htmldoc

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pdiddy/docbridge/pkg/types"
)

// blockKinds maps block-level element names to their block kind. Text
// accumulated inside one of these elements flushes as a block of that kind.
var blockKinds = map[string]types.BlockKind{
	"h1":         types.BlockHeading1,
	"h2":         types.BlockHeading2,
	"h3":         types.BlockHeading3,
	"h4":         types.BlockHeading4,
	"h5":         types.BlockHeading5,
	"h6":         types.BlockHeading6,
	"p":          types.BlockParagraph,
	"li":         types.BlockListItem,
	"blockquote": types.BlockQuote,
}

// Extract parses raw HTML and returns the ordered content blocks of its
// primary content region. The same input always yields the same block
// sequence. Whitespace runs collapse to single spaces; no block is emitted
// for empty or whitespace-only text.
func Extract(raw string) ([]types.ContentBlock, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	w := &walker{}
	for _, node := range contentRegion(doc).Nodes {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			w.walk(child)
		}
	}
	// Trailing inline text with no enclosing block element is dropped.
	return w.blocks, nil
}

// contentRegion selects the primary content region. Priority order is
// article, then main, then body, then the whole document; the first region
// present wins and the rest are not consulted.
func contentRegion(doc *goquery.Document) *goquery.Selection {
	for _, name := range []string{"article", "main", "body"} {
		if sel := doc.Find(name).First(); sel.Length() > 0 {
			return sel
		}
	}
	return doc.Selection
}

// walker accumulates raw inline text and flushes it into blocks at
// block-element boundaries: pending text flushes untagged (kind "text") when
// a block element opens, and flushes tagged with the element's kind when it
// closes. Nested blocks therefore flush innermost first. Text is collapsed
// only at flush time, so adjacency in the source survives: emphasis markers
// sit tight against unspaced text and punctuation stays attached.
type walker struct {
	blocks  []types.ContentBlock
	pending strings.Builder
}

func (w *walker) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.pending.WriteString(n.Data)
	case html.ElementNode:
		switch n.Data {
		case "script", "style":
			// Suppressed entirely, including text content.
			return
		case "strong":
			w.emphasis(n, "**")
		case "em":
			w.emphasis(n, "*")
		default:
			kind, isBlock := blockKinds[n.Data]
			if isBlock {
				w.flush(types.BlockText)
			}
			w.walkChildren(n)
			if isBlock {
				w.flush(kind)
			}
		}
	}
	// Comments and doctype nodes contribute nothing.
}

func (w *walker) walkChildren(n *html.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		w.walk(child)
	}
}

// emphasis surrounds the element's inline text with markers. The markers
// survive into the block text and are stripped again at render time, so they
// act as a round-trip no-op rather than structure.
func (w *walker) emphasis(n *html.Node, marker string) {
	w.pending.WriteString(marker)
	w.walkChildren(n)
	w.pending.WriteString(marker)
}

func (w *walker) flush(kind types.BlockKind) {
	text := collapse(w.pending.String())
	w.pending.Reset()
	if text == "" {
		return
	}
	w.blocks = append(w.blocks, types.ContentBlock{Kind: kind, Text: text})
}

// collapse normalizes whitespace runs to single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
