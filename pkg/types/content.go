// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BlockKind tags one structural unit of extracted page content. The values
// mirror the HTML element names they were extracted from; BlockText marks
// stray text that was flushed when a block element opened.
type BlockKind string

const (
	BlockHeading1  BlockKind = "h1"
	BlockHeading2  BlockKind = "h2"
	BlockHeading3  BlockKind = "h3"
	BlockHeading4  BlockKind = "h4"
	BlockHeading5  BlockKind = "h5"
	BlockHeading6  BlockKind = "h6"
	BlockParagraph BlockKind = "p"
	BlockListItem  BlockKind = "li"
	BlockQuote     BlockKind = "blockquote"
	BlockText      BlockKind = "text"
)

// HeadingLevel returns 1-6 for heading kinds and 0 for everything else.
func (k BlockKind) HeadingLevel() int {
	switch k {
	case BlockHeading1:
		return 1
	case BlockHeading2:
		return 2
	case BlockHeading3:
		return 3
	case BlockHeading4:
		return 4
	case BlockHeading5:
		return 5
	case BlockHeading6:
		return 6
	}
	return 0
}

// ContentBlock is one ordered unit of content extracted from a page.
// Blocks are immutable once produced by the extractor.
type ContentBlock struct {
	// Kind identifies the structural role: heading level, paragraph,
	// list item, block quote, or stray text.
	Kind BlockKind `json:"kind" yaml:"kind"`

	// Text is the whitespace-collapsed content, possibly carrying the
	// inline emphasis markers ** and * that rendering strips.
	Text string `json:"text" yaml:"text"`
}

// Section is a heading plus its associated body text, the unit of document
// decomposition in the Word-to-store direction. Body paragraphs are joined
// by a blank line.
type Section struct {
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body,omitempty" yaml:"body,omitempty"`
}

// DocumentContent is the extracted content of one Word document: the page
// title, any introductory text found before the first heading, and the
// ordered sections.
type DocumentContent struct {
	Title    string    `json:"title" yaml:"title"`
	Intro    string    `json:"intro" yaml:"intro"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// IsEmpty reports whether the content carries no text at all.
func (c DocumentContent) IsEmpty() bool {
	return c.Title == "" && c.Intro == "" && len(c.Sections) == 0
}

// ContentStore maps content keys (e.g. "tectonics") to their document
// content. It is persisted as the site's content.json.
type ContentStore map[string]DocumentContent
