package deck

import (
	"strconv"

	"github.com/beevik/etree"
)

// Font is the character formatting of a run, backed by its a:rPr element.
type Font struct {
	rPr *etree.Element
}

// Color returns the font's color format. A font with no fill reports
// ColorTypeNone until a color is set.
func (f *Font) Color() *ColorFormat {
	return newColorFormat(f.rPr)
}

// Bold reports whether bold is on.
func (f *Font) Bold() bool {
	return f.rPr.SelectAttrValue("b", "0") == "1"
}

// SetBold turns bold on or off.
func (f *Font) SetBold(on bool) {
	f.setBoolAttr("b", on)
}

// Italic reports whether italic is on.
func (f *Font) Italic() bool {
	return f.rPr.SelectAttrValue("i", "0") == "1"
}

// SetItalic turns italic on or off.
func (f *Font) SetItalic(on bool) {
	f.setBoolAttr("i", on)
}

// Size returns the font size, or 0 when the run inherits its size. The sz
// attribute stores centipoints.
func (f *Font) Size() Length {
	sz := f.rPr.SelectAttrValue("sz", "")
	if sz == "" {
		return 0
	}
	n, err := strconv.Atoi(sz)
	if err != nil {
		return 0
	}
	return Points(float64(n) / 100)
}

// SetSize sets the font size.
func (f *Font) SetSize(l Length) {
	centipoints := int(l.Points() * 100)
	f.rPr.CreateAttr("sz", strconv.Itoa(centipoints))
}

func (f *Font) setBoolAttr(name string, on bool) {
	if on {
		f.rPr.CreateAttr(name, "1")
		return
	}
	if attr := f.rPr.SelectAttr(name); attr != nil {
		f.rPr.RemoveAttr(name)
	}
}
