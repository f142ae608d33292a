// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

// Open reads the document package at filename and materializes its body
// paragraphs and embedded image parts. The file is fully consumed before
// Open returns; the Document holds no open handles.
func Open(filename string) (*Document, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	defer zr.Close()
	doc, err := readPackage(&zr.Reader)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return doc, nil
}

func readPackage(zr *zip.Reader) (*Document, error) {
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	docData, err := readPart(files, "word/document.xml")
	if err != nil {
		return nil, err
	}
	var body xmlDocument
	if err := xml.Unmarshal(docData, &body); err != nil {
		return nil, fmt.Errorf("parsing document part: %w", err)
	}

	styleNames, err := readStyleNames(files)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	for _, p := range body.Body.Paragraphs {
		doc.Paragraphs = append(doc.Paragraphs, p.toParagraph(styleNames))
	}

	images, err := readImages(files)
	if err != nil {
		return nil, err
	}
	doc.Images = images
	return doc, nil
}

func readPart(files map[string]*zip.File, name string) ([]byte, error) {
	f, ok := files[name]
	if !ok {
		return nil, fmt.Errorf("package part %s missing", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening part %s: %w", name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading part %s: %w", name, err)
	}
	return data, nil
}

// The decode shapes below carry no namespace so the local element names
// match whatever prefix the producing application chose.

type xmlDocument struct {
	Body xmlBody `xml:"body"`
}

type xmlBody struct {
	Paragraphs []xmlParagraph `xml:"p"`
}

type xmlParagraph struct {
	Props *xmlParaProps `xml:"pPr"`
	Runs  []xmlRun      `xml:"r"`
}

type xmlParaProps struct {
	Style *xmlVal `xml:"pStyle"`
}

type xmlVal struct {
	Val string `xml:"val,attr"`
}

type xmlRun struct {
	Props *xmlRunProps `xml:"rPr"`
	Texts []string     `xml:"t"`
}

type xmlRunProps struct {
	Bold *xmlToggle `xml:"b"`
}

// xmlToggle models OOXML on/off properties, where presence without a value
// means on.
type xmlToggle struct {
	Val string `xml:"val,attr"`
}

func (t *xmlToggle) on() bool {
	if t == nil {
		return false
	}
	switch strings.ToLower(t.Val) {
	case "", "1", "true", "on":
		return true
	}
	return false
}

func (p xmlParagraph) toParagraph(styleNames map[string]string) Paragraph {
	out := Paragraph{StyleName: "Normal"}
	if p.Props != nil && p.Props.Style != nil && p.Props.Style.Val != "" {
		id := p.Props.Style.Val
		if name, ok := styleNames[id]; ok {
			out.StyleName = name
		} else {
			out.StyleName = id
		}
	}
	for _, r := range p.Runs {
		out.Runs = append(out.Runs, Run{
			Text: strings.Join(r.Texts, ""),
			Bold: r.Props != nil && r.Props.Bold.on(),
		})
	}
	return out
}

type xmlStyles struct {
	Styles []xmlStyle `xml:"style"`
}

type xmlStyle struct {
	ID   string  `xml:"styleId,attr"`
	Name *xmlVal `xml:"name"`
}

func readStyleNames(files map[string]*zip.File) (map[string]string, error) {
	names := make(map[string]string)
	if _, ok := files["word/styles.xml"]; !ok {
		return names, nil
	}
	data, err := readPart(files, "word/styles.xml")
	if err != nil {
		return nil, err
	}
	var st xmlStyles
	if err := xml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing styles part: %w", err)
	}
	for _, s := range st.Styles {
		if s.ID == "" || s.Name == nil || s.Name.Val == "" {
			continue
		}
		names[s.ID] = s.Name.Val
	}
	return names, nil
}

type xmlRelationships struct {
	Rels []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

// readImages resolves every document relationship whose target looks like
// an image part and loads its bytes. Externally targeted relationships have
// no part inside the package and are skipped.
func readImages(files map[string]*zip.File) ([]ImagePart, error) {
	const relsName = "word/_rels/document.xml.rels"
	if _, ok := files[relsName]; !ok {
		return nil, nil
	}
	data, err := readPart(files, relsName)
	if err != nil {
		return nil, err
	}
	var rels xmlRelationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, fmt.Errorf("parsing document relationships: %w", err)
	}

	types, err := readContentTypes(files)
	if err != nil {
		return nil, err
	}

	var images []ImagePart
	for _, rel := range rels.Rels {
		if rel.TargetMode == "External" || !strings.Contains(rel.Target, "image") {
			continue
		}
		partName := path.Join("word", rel.Target)
		if _, ok := files[partName]; !ok {
			continue
		}
		partData, err := readPart(files, partName)
		if err != nil {
			return nil, err
		}
		images = append(images, ImagePart{
			RelID:       rel.ID,
			ContentType: types.lookup(partName),
			Data:        partData,
		})
	}
	return images, nil
}

type xmlTypes struct {
	Defaults  []xmlDefault  `xml:"Default"`
	Overrides []xmlOverride `xml:"Override"`
}

type xmlDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type contentTypes struct {
	defaults  map[string]string // lowercased extension without dot
	overrides map[string]string // part name with leading slash
}

func readContentTypes(files map[string]*zip.File) (*contentTypes, error) {
	ct := &contentTypes{
		defaults:  make(map[string]string),
		overrides: make(map[string]string),
	}
	const name = "[Content_Types].xml"
	if _, ok := files[name]; !ok {
		return ct, nil
	}
	data, err := readPart(files, name)
	if err != nil {
		return nil, err
	}
	var tl xmlTypes
	if err := xml.Unmarshal(data, &tl); err != nil {
		return nil, fmt.Errorf("parsing content types: %w", err)
	}
	for _, d := range tl.Defaults {
		ct.defaults[strings.ToLower(d.Extension)] = d.ContentType
	}
	for _, o := range tl.Overrides {
		ct.overrides[o.PartName] = o.ContentType
	}
	return ct, nil
}

func (c *contentTypes) lookup(partName string) string {
	if t, ok := c.overrides["/"+partName]; ok {
		return t
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(partName)), ".")
	return c.defaults[ext]
}
