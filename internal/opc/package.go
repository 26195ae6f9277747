package opc

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"
)

// ErrPartNotFound is returned when a part name is not in the package.
var ErrPartNotFound = errors.New("opc: part not found")

// Part is one member of the package: a name like "/ppt/slides/slide1.xml",
// its content type, and its raw bytes. Untouched parts round-trip through
// read and save unchanged.
type Part struct {
	Name        string
	ContentType string
	Blob        []byte
}

// Package is an in-memory OPC container.
type Package struct {
	parts        map[string]*Part
	partOrder    []string
	contentTypes *contentTypeMap
	rels         map[string]*Relationships // keyed by source part name, "" = package
}

// NewPackage returns an empty package with the baseline content-type
// defaults and an empty package-level relationship set.
func NewPackage() *Package {
	return &Package{
		parts:        make(map[string]*Part),
		contentTypes: newContentTypeMap(),
		rels:         map[string]*Relationships{"": {source: ""}},
	}
}

// Open reads a package from a file on disk.
func Open(name string) (*Package, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opc: opening %s: %w", name, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("opc: stat %s: %w", name, err)
	}
	return Read(f, info.Size())
}

// Read parses a package from a zip held in r.
func Read(r io.ReaderAt, size int64) (*Package, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opc: reading zip: %w", err)
	}

	blobs := make(map[string][]byte, len(zr.File))
	var order []string
	for _, zf := range zr.File {
		if strings.HasSuffix(zf.Name, "/") {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			return nil, fmt.Errorf("opc: opening zip member %s: %w", zf.Name, err)
		}
		blob, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("opc: reading zip member %s: %w", zf.Name, err)
		}
		blobs[zf.Name] = blob
		order = append(order, zf.Name)
	}

	ctBlob, ok := blobs[contentTypesPartName]
	if !ok {
		return nil, fmt.Errorf("opc: package has no %s", contentTypesPartName)
	}
	cts, err := parseContentTypes(ctBlob)
	if err != nil {
		return nil, err
	}

	pkg := &Package{
		parts:        make(map[string]*Part),
		contentTypes: cts,
		rels:         make(map[string]*Relationships),
	}
	for _, zipName := range order {
		if zipName == contentTypesPartName {
			continue
		}
		partName := "/" + zipName
		if isRelsName(partName) {
			source := sourceOfRels(partName)
			rels, err := parseRelationships(source, blobs[zipName])
			if err != nil {
				return nil, err
			}
			pkg.rels[source] = rels
			continue
		}
		ct, err := cts.lookup(partName)
		if err != nil {
			return nil, err
		}
		pkg.parts[partName] = &Part{Name: partName, ContentType: ct, Blob: blobs[zipName]}
		pkg.partOrder = append(pkg.partOrder, partName)
	}
	if _, ok := pkg.rels[""]; !ok {
		pkg.rels[""] = &Relationships{source: ""}
	}
	return pkg, nil
}

// Part returns the named part.
func (p *Package) Part(name string) (*Part, error) {
	part, ok := p.parts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPartNotFound, name)
	}
	return part, nil
}

// HasPart reports whether the named part exists.
func (p *Package) HasPart(name string) bool {
	_, ok := p.parts[name]
	return ok
}

// AddPart stores a part and records its content type as an override.
func (p *Package) AddPart(name, contentType string, blob []byte) *Part {
	part := &Part{Name: name, ContentType: contentType, Blob: blob}
	if _, exists := p.parts[name]; !exists {
		p.partOrder = append(p.partOrder, name)
	}
	p.parts[name] = part
	p.contentTypes.setOverride(name, contentType)
	return part
}

// AddMediaPart stores a binary part registering the content type by
// extension default rather than an override, the way media parts are
// conventionally typed.
func (p *Package) AddMediaPart(name, contentType string, blob []byte) *Part {
	part := &Part{Name: name, ContentType: contentType, Blob: blob}
	if _, exists := p.parts[name]; !exists {
		p.partOrder = append(p.partOrder, name)
	}
	p.parts[name] = part
	p.contentTypes.setDefault(path.Ext(name), contentType)
	return part
}

// NextPartName returns the first unused part name of the form
// dir/prefixN.ext, e.g. NextPartName("/ppt/media", "media", ".mp4").
func (p *Package) NextPartName(dir, prefix, ext string) string {
	for n := 1; ; n++ {
		name := fmt.Sprintf("%s/%s%d%s", dir, prefix, n, ext)
		if !p.HasPart(name) {
			return name
		}
	}
}

// Rels returns the relationship set of a source part, creating an empty
// set if the part has none yet. Pass "" for the package-level rels.
func (p *Package) Rels(source string) *Relationships {
	if rs, ok := p.rels[source]; ok {
		return rs
	}
	rs := &Relationships{source: source}
	p.rels[source] = rs
	return rs
}

// RelTarget resolves a relationship id on the source part to an absolute
// part name.
func (p *Package) RelTarget(source, id string) (string, error) {
	rs := p.Rels(source)
	r, ok := rs.Lookup(id)
	if !ok {
		return "", fmt.Errorf("opc: part %s has no relationship %s", source, id)
	}
	return rs.ResolveTarget(r), nil
}

// MainDocumentPart returns the part targeted by the package-level
// officeDocument relationship; for a .pptx this is /ppt/presentation.xml.
func (p *Package) MainDocumentPart() (*Part, error) {
	rs := p.Rels("")
	targets := rs.ByType(RTOfficeDocument)
	if len(targets) == 0 {
		return nil, errors.New("opc: package has no officeDocument relationship")
	}
	return p.Part(rs.ResolveTarget(targets[0]))
}

// SaveAs writes the package to a file.
func (p *Package) SaveAs(name string) error {
	var buf bytes.Buffer
	if err := p.Save(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("opc: writing %s: %w", name, err)
	}
	return nil
}

// Save serializes the package as a zip to w. Content types and rels are
// regenerated; part blobs are written as held.
func (p *Package) Save(w io.Writer) error {
	zw := zip.NewWriter(w)

	ctBlob, err := p.contentTypes.marshal()
	if err != nil {
		return err
	}
	if err := writeZipMember(zw, contentTypesPartName, ctBlob); err != nil {
		return err
	}

	sources := make([]string, 0, len(p.rels))
	for source := range p.rels {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	for _, source := range sources {
		rs := p.rels[source]
		if len(rs.rels) == 0 {
			continue
		}
		blob, err := rs.marshal()
		if err != nil {
			return err
		}
		if err := writeZipMember(zw, strings.TrimPrefix(relsPartName(source), "/"), blob); err != nil {
			return err
		}
	}

	for _, name := range p.partOrder {
		part := p.parts[name]
		if err := writeZipMember(zw, strings.TrimPrefix(part.Name, "/"), part.Blob); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("opc: finalizing zip: %w", err)
	}
	return nil
}

func writeZipMember(zw *zip.Writer, name string, blob []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("opc: creating zip member %s: %w", name, err)
	}
	if _, err := f.Write(blob); err != nil {
		return fmt.Errorf("opc: writing zip member %s: %w", name, err)
	}
	return nil
}

func isRelsName(partName string) bool {
	return strings.HasSuffix(partName, ".rels") && path.Base(path.Dir(partName)) == "_rels"
}

// sourceOfRels maps "/ppt/slides/_rels/slide1.xml.rels" back to
// "/ppt/slides/slide1.xml" and "/_rels/.rels" to "".
func sourceOfRels(relsName string) string {
	dir := path.Dir(path.Dir(relsName))
	base := strings.TrimSuffix(path.Base(relsName), ".rels")
	if base == "" || base == "." {
		return ""
	}
	if dir == "/" {
		if base == "" {
			return ""
		}
		return "/" + base
	}
	return dir + "/" + base
}
