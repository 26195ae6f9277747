package deck

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/beevik/etree"

	"slidekit/internal/opc"
	"slidekit/internal/oxml"
)

// Presentation is an open .pptx document.
type Presentation struct {
	pkg      *opc.Package
	partName string // main document part, normally /ppt/presentation.xml
	doc      *etree.Document
	slides   []*Slide
}

// Open reads a presentation from a file.
func Open(name string) (*Presentation, error) {
	pkg, err := opc.Open(name)
	if err != nil {
		return nil, err
	}
	return fromPackage(pkg)
}

// OpenReader reads a presentation from an in-memory or seekable source.
func OpenReader(r io.ReaderAt, size int64) (*Presentation, error) {
	pkg, err := opc.Read(r, size)
	if err != nil {
		return nil, err
	}
	return fromPackage(pkg)
}

// New creates a minimal single-slide presentation from the built-in
// template.
func New() (*Presentation, error) {
	pkg, err := templatePackage()
	if err != nil {
		return nil, err
	}
	return fromPackage(pkg)
}

func fromPackage(pkg *opc.Package) (*Presentation, error) {
	main, err := pkg.MainDocumentPart()
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(main.Blob); err != nil {
		return nil, fmt.Errorf("deck: parsing %s: %w", main.Name, err)
	}
	pres := &Presentation{pkg: pkg, partName: main.Name, doc: doc}
	if err := pres.loadSlides(); err != nil {
		return nil, err
	}
	return pres, nil
}

// loadSlides resolves the sldIdLst through the presentation part's
// relationships, preserving presentation order.
func (p *Presentation) loadSlides() error {
	sldIdLst := p.doc.FindElement("//p:sldIdLst")
	if sldIdLst == nil {
		return nil // a presentation with no slides has no sldIdLst
	}
	for _, sldId := range sldIdLst.SelectElements("p:sldId") {
		rID := sldId.SelectAttrValue("r:id", "")
		if rID == "" {
			return fmt.Errorf("deck: sldId %s has no r:id", sldId.SelectAttrValue("id", "?"))
		}
		target, err := p.pkg.RelTarget(p.partName, rID)
		if err != nil {
			return err
		}
		part, err := p.pkg.Part(target)
		if err != nil {
			return err
		}
		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(part.Blob); err != nil {
			return fmt.Errorf("deck: parsing %s: %w", part.Name, err)
		}
		p.slides = append(p.slides, &Slide{pres: p, partName: part.Name, doc: doc})
	}
	return nil
}

// Slides returns the presentation's slides in presentation order.
func (p *Presentation) Slides() []*Slide {
	return p.slides
}

// SlideSize returns the slide width and height.
func (p *Presentation) SlideSize() (cx, cy Length, err error) {
	sldSz := p.doc.FindElement("//p:sldSz")
	if sldSz == nil {
		return 0, 0, fmt.Errorf("deck: presentation has no sldSz element")
	}
	cxv, err := strconv.ParseInt(sldSz.SelectAttrValue("cx", ""), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("deck: invalid sldSz cx: %w", err)
	}
	cyv, err := strconv.ParseInt(sldSz.SelectAttrValue("cy", ""), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("deck: invalid sldSz cy: %w", err)
	}
	return Length(cxv), Length(cyv), nil
}

// SetSlideSize sets the slide dimensions, validating the schema range.
func (p *Presentation) SetSlideSize(cx, cy Length) error {
	if err := oxml.ValidateSlideSizeCoordinate(int64(cx)); err != nil {
		return err
	}
	if err := oxml.ValidateSlideSizeCoordinate(int64(cy)); err != nil {
		return err
	}
	sldSz := p.doc.FindElement("//p:sldSz")
	if sldSz == nil {
		return fmt.Errorf("deck: presentation has no sldSz element")
	}
	sldSz.CreateAttr("cx", strconv.FormatInt(int64(cx), 10))
	sldSz.CreateAttr("cy", strconv.FormatInt(int64(cy), 10))
	return nil
}

// Save writes the presentation package to w, flushing all parsed parts.
func (p *Presentation) Save(w io.Writer) error {
	for _, s := range p.slides {
		if err := s.flush(); err != nil {
			return err
		}
	}
	main, err := p.pkg.Part(p.partName)
	if err != nil {
		return err
	}
	blob, err := p.doc.WriteToBytes()
	if err != nil {
		return fmt.Errorf("deck: serializing %s: %w", p.partName, err)
	}
	main.Blob = blob
	return p.pkg.Save(w)
}

// SaveAs writes the presentation package to a file.
func (p *Presentation) SaveAs(name string) error {
	var buf bytes.Buffer
	if err := p.Save(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("deck: writing %s: %w", name, err)
	}
	return nil
}

// Bytes serializes the presentation package and returns the zip bytes.
func (p *Presentation) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
