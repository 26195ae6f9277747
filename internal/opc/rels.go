package opc

import (
	"encoding/xml"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"
)

// Relationship type URIs used by presentation packages.
const (
	RTOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RTSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	RTSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	RTSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	RTTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	RTImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	RTVideo          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/video"
	RTMedia          = "http://schemas.microsoft.com/office/2007/relationships/media"
)

// Relationship is one edge in a part's .rels file. Target is a package
// part name resolved against the source part's base directory, or an
// external URI when External is set.
type Relationship struct {
	ID       string
	Type     string
	Target   string
	External bool
}

// Relationships is the ordered relationship set of one source part.
type Relationships struct {
	source string // part name the rels belong to; "" for package root
	rels   []Relationship
}

type xmlRelationships struct {
	XMLName xml.Name          `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Rels    []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

func parseRelationships(source string, blob []byte) (*Relationships, error) {
	var parsed xmlRelationships
	if err := xml.Unmarshal(blob, &parsed); err != nil {
		return nil, fmt.Errorf("opc: parsing rels for %s: %w", source, err)
	}
	rs := &Relationships{source: source}
	for _, r := range parsed.Rels {
		rs.rels = append(rs.rels, Relationship{
			ID:       r.ID,
			Type:     r.Type,
			Target:   r.Target,
			External: r.TargetMode == "External",
		})
	}
	return rs, nil
}

// Lookup returns the relationship with the given id.
func (rs *Relationships) Lookup(id string) (Relationship, bool) {
	for _, r := range rs.rels {
		if r.ID == id {
			return r, true
		}
	}
	return Relationship{}, false
}

// ByType returns all relationships of the given type, in file order.
func (rs *Relationships) ByType(relType string) []Relationship {
	var out []Relationship
	for _, r := range rs.rels {
		if r.Type == relType {
			out = append(out, r)
		}
	}
	return out
}

// Add appends a relationship with the next free rId and returns the id.
func (rs *Relationships) Add(relType, target string, external bool) string {
	id := rs.nextID()
	rs.rels = append(rs.rels, Relationship{ID: id, Type: relType, Target: target, External: external})
	return id
}

// GetOrAdd returns the id of an existing relationship matching type and
// target, adding one if needed. Package writers reuse relationships so the
// same media part is not linked twice.
func (rs *Relationships) GetOrAdd(relType, target string, external bool) string {
	for _, r := range rs.rels {
		if r.Type == relType && r.Target == target && r.External == external {
			return r.ID
		}
	}
	return rs.Add(relType, target, external)
}

func (rs *Relationships) nextID() string {
	used := make(map[int]bool, len(rs.rels))
	for _, r := range rs.rels {
		if n, err := strconv.Atoi(strings.TrimPrefix(r.ID, "rId")); err == nil {
			used[n] = true
		}
	}
	for n := 1; ; n++ {
		if !used[n] {
			return "rId" + strconv.Itoa(n)
		}
	}
}

// ResolveTarget turns a relationship's relative target into an absolute
// part name, e.g. "../media/movie1.mp4" against "/ppt/slides/slide1.xml"
// yields "/ppt/media/movie1.mp4". External targets are returned unchanged.
func (rs *Relationships) ResolveTarget(r Relationship) string {
	if r.External {
		return r.Target
	}
	base := "/"
	if rs.source != "" {
		base = path.Dir(rs.source)
	}
	if strings.HasPrefix(r.Target, "/") {
		return path.Clean(r.Target)
	}
	return path.Clean(path.Join(base, r.Target))
}

// relsPartName returns the .rels part name for a source part, or the
// package-level rels name when source is empty.
func relsPartName(source string) string {
	if source == "" {
		return "/_rels/.rels"
	}
	return path.Join(path.Dir(source), "_rels", path.Base(source)+".rels")
}

func (rs *Relationships) marshal() ([]byte, error) {
	out := xmlRelationships{}
	rels := make([]Relationship, len(rs.rels))
	copy(rels, rs.rels)
	sort.SliceStable(rels, func(i, j int) bool {
		return relIDOrdinal(rels[i].ID) < relIDOrdinal(rels[j].ID)
	})
	for _, r := range rels {
		xr := xmlRelationship{ID: r.ID, Type: r.Type, Target: r.Target}
		if r.External {
			xr.TargetMode = "External"
		}
		out.Rels = append(out.Rels, xr)
	}
	body, err := xml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("opc: marshaling rels for %s: %w", rs.source, err)
	}
	return append([]byte(xml.Header), body...), nil
}

func relIDOrdinal(id string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, "rId"))
	if err != nil {
		return 1 << 30
	}
	return n
}
