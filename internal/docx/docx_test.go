// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter()
	w.AddHeading("Intro", 1)
	w.AddParagraph("Some body text.")
	w.AddListItem("Item A")
	w.AddQuote("A borrowed thought.")
	w.AddHeading("Methods", 2)
	require.Equal(t, 5, w.Len())

	path := filepath.Join(t.TempDir(), "page.docx")
	require.NoError(t, w.Save(path))

	doc, err := Open(path)
	require.NoError(t, err)
	require.Len(t, doc.Paragraphs, 5)

	styles := make([]string, 0, len(doc.Paragraphs))
	texts := make([]string, 0, len(doc.Paragraphs))
	for _, p := range doc.Paragraphs {
		styles = append(styles, p.StyleName)
		texts = append(texts, p.Text())
	}
	assert.Equal(t, []string{"heading 1", "Normal", "List Bullet", "Quote", "heading 2"}, styles)
	assert.Equal(t, []string{"Intro", "Some body text.", "Item A", "A borrowed thought.", "Methods"}, texts)
	assert.Empty(t, doc.Images)
}

func TestWriterEscapesMarkup(t *testing.T) {
	w := NewWriter()
	w.AddParagraph(`Ball & "chain" <tag>`)

	path := filepath.Join(t.TempDir(), "escape.docx")
	require.NoError(t, w.Save(path))

	doc, err := Open(path)
	require.NoError(t, err)
	require.Len(t, doc.Paragraphs, 1)
	assert.Equal(t, `Ball & "chain" <tag>`, doc.Paragraphs[0].Text())
}

func TestWriterClampsHeadingLevels(t *testing.T) {
	w := NewWriter()
	w.AddHeading("Too low", 0)
	w.AddHeading("Too high", 9)

	path := filepath.Join(t.TempDir(), "clamp.docx")
	require.NoError(t, w.Save(path))

	doc, err := Open(path)
	require.NoError(t, err)
	require.Len(t, doc.Paragraphs, 2)
	assert.Equal(t, "heading 1", doc.Paragraphs[0].StyleName)
	assert.Equal(t, "heading 6", doc.Paragraphs[1].StyleName)
}

func TestReaderBoldRuns(t *testing.T) {
	const docXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:r><w:rPr><w:b/></w:rPr><w:t>Bold lead</w:t></w:r>
      <w:r><w:t xml:space="preserve"> plain tail</w:t></w:r>
    </w:p>
    <w:p>
      <w:r><w:rPr><w:b w:val="0"/></w:rPr><w:t>off</w:t></w:r>
      <w:r><w:rPr><w:b w:val="false"/></w:rPr><w:t>also off</w:t></w:r>
      <w:r><w:rPr><w:b w:val="1"/></w:rPr><w:t>on</w:t></w:r>
    </w:p>
    <w:p>
      <w:r><w:t>sp</w:t><w:t>lit</w:t></w:r>
    </w:p>
  </w:body>
</w:document>`

	doc, err := Open(writeRawPackage(t, map[string]string{
		"word/document.xml": docXML,
	}))
	require.NoError(t, err)
	require.Len(t, doc.Paragraphs, 3)

	first := doc.Paragraphs[0]
	require.Len(t, first.Runs, 2)
	assert.True(t, first.Runs[0].Bold)
	assert.False(t, first.Runs[1].Bold)
	assert.Equal(t, "Bold lead plain tail", first.Text())

	second := doc.Paragraphs[1]
	require.Len(t, second.Runs, 3)
	assert.False(t, second.Runs[0].Bold)
	assert.False(t, second.Runs[1].Bold)
	assert.True(t, second.Runs[2].Bold)

	assert.Equal(t, "split", doc.Paragraphs[2].Text())
}

func TestReaderStyleNameFallback(t *testing.T) {
	const docXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:pPr><w:pStyle w:val="FieldNotes"/></w:pPr>
      <w:r><w:t>custom style</w:t></w:r>
    </w:p>
    <w:p>
      <w:r><w:t>no style</w:t></w:r>
    </w:p>
  </w:body>
</w:document>`

	doc, err := Open(writeRawPackage(t, map[string]string{
		"word/document.xml": docXML,
	}))
	require.NoError(t, err)
	require.Len(t, doc.Paragraphs, 2)
	assert.Equal(t, "FieldNotes", doc.Paragraphs[0].StyleName)
	assert.Equal(t, "Normal", doc.Paragraphs[1].StyleName)
}

func TestReaderImages(t *testing.T) {
	const docXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>has figures</w:t></w:r></w:p></w:body>
</w:document>`
	const relsXML = `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
  <Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image1.png"/>
  <Relationship Id="rId5" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="http://example.com/image2.png" TargetMode="External"/>
</Relationships>`
	const typesXML = `<?xml version="1.0"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="png" ContentType="image/png"/>
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
</Types>`
	pngBytes := "\x89PNG\r\n\x1a\nfakebody"

	doc, err := Open(writeRawPackage(t, map[string]string{
		"word/document.xml":            docXML,
		"word/_rels/document.xml.rels": relsXML,
		"[Content_Types].xml":          typesXML,
		"word/media/image1.png":        pngBytes,
	}))
	require.NoError(t, err)
	require.Len(t, doc.Images, 1, "external and non-image targets must be skipped")

	img := doc.Images[0]
	assert.Equal(t, "rId4", img.RelID)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, "png", img.Ext())
	assert.Equal(t, []byte(pngBytes), img.Data)
}

func TestReaderContentTypeOverride(t *testing.T) {
	const docXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>x</w:t></w:r></w:p></w:body>
</w:document>`
	const relsXML = `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image1.bin"/>
</Relationships>`
	const typesXML = `<?xml version="1.0"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Override PartName="/word/media/image1.bin" ContentType="image/jpeg"/>
</Types>`

	doc, err := Open(writeRawPackage(t, map[string]string{
		"word/document.xml":            docXML,
		"word/_rels/document.xml.rels": relsXML,
		"[Content_Types].xml":          typesXML,
		"word/media/image1.bin":        "jpegbody",
	}))
	require.NoError(t, err)
	require.Len(t, doc.Images, 1)
	assert.Equal(t, "image/jpeg", doc.Images[0].ContentType)
	assert.Equal(t, "jpeg", doc.Images[0].Ext())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.docx"))
	assert.Error(t, err)
}

func TestOpenMissingDocumentPart(t *testing.T) {
	_, err := Open(writeRawPackage(t, map[string]string{
		"word/styles.xml": stylesXML,
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word/document.xml")
}

// writeRawPackage zips the given parts into a temp file and returns its path.
func writeRawPackage(t *testing.T, parts map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raw.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, data := range parts {
		pw, err := zw.Create(name)
		require.NoError(t, err)
		_, err = io.WriteString(pw, data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}
