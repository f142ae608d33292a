// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx reads and writes Office Open XML word-processing documents
// using only archive/zip and encoding/xml. The writer emits the handful of
// paragraph styles the content pipeline needs; the reader recovers
// paragraphs with their resolved style names, run formatting, and any
// embedded image parts. Neither side attempts full OOXML fidelity.
package docx

import "strings"

// Document is a fully materialized word-processing document. All parts are
// read into memory up front so no file handle outlives Open.
type Document struct {
	// Paragraphs holds the body paragraphs in document order.
	Paragraphs []Paragraph
	// Images holds the embedded image parts referenced from the document
	// part, in relationship order.
	Images []ImagePart
}

// Paragraph is a single body paragraph.
type Paragraph struct {
	// StyleName is the human-readable style name ("heading 1", "Normal").
	// When the style table does not define the referenced identifier the
	// identifier itself is used; paragraphs without an explicit style
	// reference report "Normal".
	StyleName string
	// Runs holds the formatted text runs in paragraph order.
	Runs []Run
}

// Run is a contiguous span of identically formatted text.
type Run struct {
	Text string
	Bold bool
}

// Text returns the concatenated text of all runs.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// ImagePart is an embedded image referenced from the document part.
type ImagePart struct {
	// RelID is the relationship identifier ("rId4").
	RelID string
	// ContentType is the declared MIME type ("image/png").
	ContentType string
	// Data is the raw image bytes.
	Data []byte
}

// Ext returns the extension implied by the content type: the final segment
// of the MIME type, so "image/jpeg" reports "jpeg".
func (p ImagePart) Ext() string {
	parts := strings.Split(p.ContentType, "/")
	return parts[len(parts)-1]
}
