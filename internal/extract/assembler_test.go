// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docbridge/internal/docx"
	"github.com/pdiddy/docbridge/pkg/types"
)

func para(style, text string) docx.Paragraph {
	return docx.Paragraph{StyleName: style, Runs: []docx.Run{{Text: text}}}
}

func boldPara(style string, runs ...docx.Run) docx.Paragraph {
	return docx.Paragraph{StyleName: style, Runs: runs}
}

func assemble(paras ...docx.Paragraph) types.DocumentContent {
	a := NewAssembler()
	for _, p := range paras {
		a.Add(p)
	}
	return a.Result()
}

func TestAssemblerHeadingsOpenSections(t *testing.T) {
	content := assemble(
		para("heading 1", "Intro"),
		para("Normal", "Text 1"),
		para("heading 2", "Part A"),
		para("Normal", "Text 2"),
		para("Normal", "Text 3"),
	)

	assert.Equal(t, "Intro", content.Title)
	assert.Equal(t, "", content.Intro)
	require.Len(t, content.Sections, 2)
	assert.Equal(t, types.Section{Heading: "Intro", Body: "Text 1"}, content.Sections[0])
	assert.Equal(t, types.Section{Heading: "Part A", Body: "Text 2\n\nText 3"}, content.Sections[1])
}

func TestAssemblerTitleIntroBranching(t *testing.T) {
	long := strings.Repeat("long intro text ", 15) // well over 200 runes

	t.Run("short first paragraph claims title", func(t *testing.T) {
		content := assemble(
			para("Normal", "Maps and Location"),
			para("Normal", "Welcome to the unit."),
			para("Normal", "It spans three weeks."),
		)
		assert.Equal(t, "Maps and Location", content.Title)
		assert.Equal(t, "Welcome to the unit.\n\nIt spans three weeks.", content.Intro)
	})

	t.Run("long first paragraph becomes intro and leaves title open", func(t *testing.T) {
		content := assemble(
			para("Normal", long),
			para("Normal", "Maps and Location"),
		)
		assert.Equal(t, "Maps and Location", content.Title)
		assert.Equal(t, long, content.Intro)
	})

	t.Run("second long pre-title paragraph replaces intro", func(t *testing.T) {
		first := long + "first."
		second := long + "second."
		content := assemble(
			para("Normal", first),
			para("Normal", second),
		)
		assert.Equal(t, "", content.Title)
		assert.Equal(t, second, content.Intro, "pre-title long paragraphs overwrite, not append")
	})

	t.Run("exactly 200 runes is not a title", func(t *testing.T) {
		text := strings.Repeat("x", 200)
		content := assemble(para("Normal", text))
		assert.Equal(t, "", content.Title)
		assert.Equal(t, text, content.Intro)
	})
}

func TestAssemblerBoldHeadingHeuristic(t *testing.T) {
	t.Run("short all-bold paragraph is a heading", func(t *testing.T) {
		content := assemble(
			boldPara("Normal", docx.Run{Text: "Key Terms", Bold: true}),
			para("Normal", "Strike and dip."),
		)
		require.Len(t, content.Sections, 1)
		assert.Equal(t, "Key Terms", content.Sections[0].Heading)
		assert.Equal(t, "Strike and dip.", content.Sections[0].Body)
		assert.Equal(t, "", content.Title, "bold headings never claim the title")
	})

	t.Run("long all-bold paragraph stays body", func(t *testing.T) {
		long := strings.Repeat("emphasis ", 15) // 100+ runes
		content := assemble(boldPara("Normal", docx.Run{Text: long, Bold: true}))
		assert.Empty(t, content.Sections)
	})

	t.Run("mixed bold and plain runs stay body", func(t *testing.T) {
		content := assemble(boldPara("Normal",
			docx.Run{Text: "Partly", Bold: true},
			docx.Run{Text: " plain"},
		))
		assert.Empty(t, content.Sections)
		assert.Equal(t, "Partly plain", content.Title)
	})

	t.Run("blank runs are ignored by the bold check", func(t *testing.T) {
		content := assemble(boldPara("Normal",
			docx.Run{Text: "Glossary", Bold: true},
			docx.Run{Text: "   "},
		))
		require.Len(t, content.Sections, 1)
		assert.Equal(t, "Glossary", content.Sections[0].Heading)
	})
}

func TestAssemblerTitlePrecedence(t *testing.T) {
	t.Run("heading 2 claims the title", func(t *testing.T) {
		content := assemble(para("heading 2", "Plate Tectonics"))
		assert.Equal(t, "Plate Tectonics", content.Title)
	})

	t.Run("heading 3 never claims the title", func(t *testing.T) {
		content := assemble(
			para("heading 3", "Subtopic"),
			para("Normal", "Detail."),
		)
		assert.Equal(t, "", content.Title)
		require.Len(t, content.Sections, 1)
		assert.Equal(t, "Subtopic", content.Sections[0].Heading)
	})

	t.Run("Title style claims the title", func(t *testing.T) {
		content := assemble(para("Title", "The Field Guide"))
		assert.Equal(t, "The Field Guide", content.Title)
	})

	t.Run("first qualifying heading wins", func(t *testing.T) {
		content := assemble(
			para("heading 1", "First"),
			para("heading 1", "Second"),
		)
		assert.Equal(t, "First", content.Title)
		require.Len(t, content.Sections, 2)
	})
}

func TestAssemblerSkipsBlankParagraphs(t *testing.T) {
	content := assemble(
		para("Normal", "   "),
		para("heading 1", "Rivers"),
		para("Normal", "\t"),
		para("Normal", "Flow downhill."),
	)
	assert.Equal(t, "Rivers", content.Title)
	require.Len(t, content.Sections, 1)
	assert.Equal(t, "Flow downhill.", content.Sections[0].Body)
}

func TestAssemblerEmptyDocument(t *testing.T) {
	content := assemble()
	assert.True(t, content.IsEmpty())

	data, err := json.Marshal(content)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sections":[]`, "sections must serialize as an empty list, not null")
}

func TestAssemblerSectionWithoutBodyOmitsBody(t *testing.T) {
	content := assemble(
		para("heading 1", "A"),
		para("heading 2", "B"),
	)
	require.Len(t, content.Sections, 2)
	assert.Equal(t, "", content.Sections[0].Body)

	data, err := json.Marshal(content)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"body"`)
}

func TestIsHeading(t *testing.T) {
	tests := []struct {
		name string
		para docx.Paragraph
		want bool
	}{
		{"heading style", para("heading 4", "Deep subtopic"), true},
		{"title style", para("Title", "Cover"), true},
		{"custom style containing heading", para("My Heading Style", "X"), true},
		{"normal style plain run", para("Normal", "Just text"), false},
		{"no runs", docx.Paragraph{StyleName: "Normal"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isHeading(tt.para, tt.para.Text()))
		})
	}
}
