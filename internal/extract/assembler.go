// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/docbridge/internal/docx"
	"github.com/pdiddy/docbridge/pkg/types"
)

// sectionState tracks where paragraph text accumulates.
type sectionState int

const (
	// noSection: no heading seen yet; text lands in title or intro.
	noSection sectionState = iota
	// inSection: a heading is open; text joins its body.
	inSection
)

// Assembler folds a document's paragraphs, in order, into DocumentContent.
// Headings close the open section and start the next one; everything before
// the first heading becomes title or intro. The title/intro split is a
// compatibility contract with existing content stores and must not be
// simplified: a short first paragraph claims the title, a long one becomes
// the intro while leaving the title slot open for a later short paragraph,
// and a second long pre-title paragraph replaces the intro outright.
type Assembler struct {
	state   sectionState
	content types.DocumentContent
	heading string
	pending []string
}

// NewAssembler returns an empty assembler. Sections start non-nil so an
// empty document still serializes with an empty list.
func NewAssembler() *Assembler {
	return &Assembler{content: types.DocumentContent{Sections: []types.Section{}}}
}

// Add feeds one paragraph. Blank paragraphs are ignored.
func (a *Assembler) Add(para docx.Paragraph) {
	text := strings.TrimSpace(para.Text())
	if text == "" {
		return
	}

	if isHeading(para, text) {
		a.closeSection()
		a.state = inSection
		a.heading = text
		a.claimTitle(strings.ToLower(para.StyleName), text)
		return
	}

	switch {
	case a.state == noSection && a.content.Title == "":
		if utf8.RuneCountInString(text) < 200 {
			a.content.Title = text
		} else {
			a.content.Intro = text
		}
	case a.state == noSection:
		if a.content.Intro == "" {
			a.content.Intro = text
		} else {
			a.content.Intro += "\n\n" + text
		}
	default:
		a.pending = append(a.pending, text)
	}
}

// Result closes any open section and returns the assembled content.
func (a *Assembler) Result() types.DocumentContent {
	a.closeSection()
	return a.content
}

func (a *Assembler) closeSection() {
	if a.state != inSection {
		return
	}
	sec := types.Section{Heading: a.heading}
	if len(a.pending) > 0 {
		sec.Body = strings.Join(a.pending, "\n\n")
	}
	a.content.Sections = append(a.content.Sections, sec)
	a.pending = nil
	a.heading = ""
	a.state = noSection
}

// claimTitle records text as the document title for qualifying heading
// styles. The first qualifying heading wins; later ones never overwrite.
func (a *Assembler) claimTitle(style, text string) {
	if a.content.Title != "" {
		return
	}
	if strings.Contains(style, "heading 1") || strings.Contains(style, "title") {
		a.content.Title = text
	} else if strings.Contains(style, "heading 2") {
		a.content.Title = text
	}
}

// isHeading classifies a paragraph as a section heading when its style name
// says so, or when every non-blank run is bold and the text is short. Both
// conditions are part of the compatibility contract.
func isHeading(para docx.Paragraph, text string) bool {
	style := strings.ToLower(para.StyleName)
	if strings.Contains(style, "heading") || strings.Contains(style, "title") {
		return true
	}
	return allNonBlankRunsBold(para.Runs) && utf8.RuneCountInString(text) < 100
}

func allNonBlankRunsBold(runs []docx.Run) bool {
	if len(runs) == 0 {
		return false
	}
	for _, r := range runs {
		if strings.TrimSpace(r.Text) == "" {
			continue
		}
		if !r.Bold {
			return false
		}
	}
	return true
}
