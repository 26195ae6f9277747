package deck

import (
	"fmt"

	"github.com/beevik/etree"
)

// Slide is one slide part, parsed on first access and written back to the
// package on save.
type Slide struct {
	pres     *Presentation
	partName string
	doc      *etree.Document
}

// PartName returns the slide's package part name, e.g.
// "/ppt/slides/slide1.xml".
func (s *Slide) PartName() string {
	return s.partName
}

// Shapes returns the slide's shape collection.
func (s *Slide) Shapes() (*Shapes, error) {
	spTree := s.doc.FindElement("//p:cSld/p:spTree")
	if spTree == nil {
		return nil, fmt.Errorf("deck: slide %s has no shape tree", s.partName)
	}
	return &Shapes{slide: s, spTree: spTree}, nil
}

// flush serializes the slide XML back into its package part.
func (s *Slide) flush() error {
	part, err := s.pres.pkg.Part(s.partName)
	if err != nil {
		return err
	}
	blob, err := s.doc.WriteToBytes()
	if err != nil {
		return fmt.Errorf("deck: serializing %s: %w", s.partName, err)
	}
	part.Blob = blob
	return nil
}
