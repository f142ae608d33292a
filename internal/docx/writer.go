// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Writer accumulates styled paragraphs and saves them as a minimal but
// well-formed .docx package. Paragraphs appear in the order they were added.
type Writer struct {
	paras []styledParagraph
}

type styledParagraph struct {
	style string // paragraph style identifier, empty for the default style
	text  string
}

// NewWriter returns an empty document writer.
func NewWriter() *Writer {
	return &Writer{}
}

// AddHeading appends a heading paragraph. Levels outside 1..6 are clamped.
func (w *Writer) AddHeading(text string, level int) {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	w.paras = append(w.paras, styledParagraph{style: fmt.Sprintf("Heading%d", level), text: text})
}

// AddParagraph appends a body paragraph in the default style.
func (w *Writer) AddParagraph(text string) {
	w.paras = append(w.paras, styledParagraph{text: text})
}

// AddListItem appends a bulleted list paragraph.
func (w *Writer) AddListItem(text string) {
	w.paras = append(w.paras, styledParagraph{style: "ListBullet", text: text})
}

// AddQuote appends a block-quote paragraph.
func (w *Writer) AddQuote(text string) {
	w.paras = append(w.paras, styledParagraph{style: "Quote", text: text})
}

// Len reports the number of paragraphs added so far.
func (w *Writer) Len() int {
	return len(w.paras)
}

// Save writes the document package to path, replacing any existing file.
func (w *Writer) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := w.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// Write serializes the document package to out.
func (w *Writer) Write(out io.Writer) error {
	zw := zip.NewWriter(out)
	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", w.documentXML()},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/numbering.xml", numberingXML},
	}
	for _, p := range parts {
		fw, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("creating part %s: %w", p.name, err)
		}
		if _, err := io.WriteString(fw, p.data); err != nil {
			return fmt.Errorf("writing part %s: %w", p.name, err)
		}
	}
	return zw.Close()
}

func (w *Writer) documentXML() string {
	var b strings.Builder
	b.WriteString(documentHeaderXML)
	for _, p := range w.paras {
		b.WriteString("    <w:p>\n")
		if p.style != "" {
			fmt.Fprintf(&b, "      <w:pPr><w:pStyle w:val=\"%s\"/></w:pPr>\n", p.style)
		}
		fmt.Fprintf(&b, "      <w:r><w:t xml:space=\"preserve\">%s</w:t></w:r>\n", escape(p.text))
		b.WriteString("    </w:p>\n")
	}
	b.WriteString(documentFooterXML)
	return b.String()
}

// escape entity-encodes text for embedding in an XML element.
func escape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
