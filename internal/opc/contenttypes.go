// Package opc implements the Open Packaging Conventions container a .pptx
// file lives in: a zip archive of parts plus two bookkeeping layers, the
// [Content_Types].xml map and per-part relationship files.
package opc

import (
	"encoding/xml"
	"fmt"
	"path"
	"sort"
	"strings"
)

const contentTypesPartName = "[Content_Types].xml"

// Well-known content types.
const (
	CTRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	CTPresentation  = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	CTSlide         = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	CTSlideLayout   = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	CTSlideMaster   = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	CTTheme         = "application/vnd.openxmlformats-officedocument.theme+xml"
	CTPNG           = "image/png"
	CTJPEG          = "image/jpeg"
	CTMP4           = "video/mp4"
	CTXML           = "application/xml"
)

type ctTypes struct {
	XMLName   xml.Name     `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults  []ctDefault  `xml:"Default"`
	Overrides []ctOverride `xml:"Override"`
}

type ctDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type ctOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// contentTypeMap resolves part names to content types via extension
// defaults and per-part overrides.
type contentTypeMap struct {
	defaults  map[string]string // extension (lowercase, no dot) -> content type
	overrides map[string]string // partname (with leading slash) -> content type
}

func newContentTypeMap() *contentTypeMap {
	return &contentTypeMap{
		defaults: map[string]string{
			"rels": CTRelationships,
			"xml":  CTXML,
		},
		overrides: make(map[string]string),
	}
}

func parseContentTypes(blob []byte) (*contentTypeMap, error) {
	var parsed ctTypes
	if err := xml.Unmarshal(blob, &parsed); err != nil {
		return nil, fmt.Errorf("opc: parsing %s: %w", contentTypesPartName, err)
	}
	m := &contentTypeMap{
		defaults:  make(map[string]string, len(parsed.Defaults)),
		overrides: make(map[string]string, len(parsed.Overrides)),
	}
	for _, d := range parsed.Defaults {
		m.defaults[strings.ToLower(d.Extension)] = d.ContentType
	}
	for _, o := range parsed.Overrides {
		m.overrides[o.PartName] = o.ContentType
	}
	return m, nil
}

// lookup returns the content type for a part name like "/ppt/slides/slide1.xml".
func (m *contentTypeMap) lookup(partName string) (string, error) {
	if ct, ok := m.overrides[partName]; ok {
		return ct, nil
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(partName), "."))
	if ct, ok := m.defaults[ext]; ok {
		return ct, nil
	}
	return "", fmt.Errorf("opc: no content type for part %s", partName)
}

// setOverride records an explicit content type for one part.
func (m *contentTypeMap) setOverride(partName, contentType string) {
	m.overrides[partName] = contentType
}

// setDefault records a content type for an extension, unless the extension
// already maps to the same or another type.
func (m *contentTypeMap) setDefault(ext, contentType string) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if _, ok := m.defaults[ext]; !ok {
		m.defaults[ext] = contentType
	}
}

// marshal renders the [Content_Types].xml blob with stable ordering.
func (m *contentTypeMap) marshal() ([]byte, error) {
	out := ctTypes{}
	exts := make([]string, 0, len(m.defaults))
	for ext := range m.defaults {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		out.Defaults = append(out.Defaults, ctDefault{Extension: ext, ContentType: m.defaults[ext]})
	}
	names := make([]string, 0, len(m.overrides))
	for name := range m.overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out.Overrides = append(out.Overrides, ctOverride{PartName: name, ContentType: m.overrides[name]})
	}
	body, err := xml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("opc: marshaling content types: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
