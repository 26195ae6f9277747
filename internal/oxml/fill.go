package oxml

import (
	"errors"
	"fmt"
	"math"

	"github.com/beevik/etree"
)

// ErrNoFill is returned when an operation needs a solid fill and the
// element has none. Brightness in particular only applies to a fill that
// already carries a color.
var ErrNoFill = errors.New("oxml: element has no solid fill")

// Fill group members within CT_TextCharacterProperties and CT_ShapeProperties.
// The group is a choice: setting a solid fill removes any sibling fill kind.
var fillKinds = []string{
	"a:noFill", "a:solidFill", "a:gradFill", "a:blipFill", "a:pattFill", "a:grpFill",
}

// Elements that must follow the fill group inside a:rPr, per the schema
// sequence. A new a:solidFill is inserted before the first of these.
var fillSuccessors = []string{
	"a:effectLst", "a:effectDag", "a:highlight", "a:uLnTx", "a:uLn",
	"a:uFillTx", "a:uFill", "a:latin", "a:ea", "a:cs", "a:sym",
	"a:hlinkClick", "a:hlinkMouseOver", "a:rtl", "a:extLst",
}

// Fill manipulates the DrawingML fill of a single parent element, typically
// an a:rPr. All reads tolerate a missing fill; writes create it.
type Fill struct {
	parent *etree.Element
}

// NewFill wraps parent, which may or may not contain a fill yet.
func NewFill(parent *etree.Element) *Fill {
	return &Fill{parent: parent}
}

// SolidFill returns the a:solidFill child, or nil.
func (f *Fill) SolidFill() *etree.Element {
	return f.parent.SelectElement("a:solidFill")
}

// colorElement returns the color choice child of the solid fill
// (a:srgbClr or a:schemeClr), or nil when there is no solid fill or the
// fill uses a color kind this layer does not model.
func (f *Fill) colorElement() *etree.Element {
	sf := f.SolidFill()
	if sf == nil {
		return nil
	}
	if e := sf.SelectElement("a:srgbClr"); e != nil {
		return e
	}
	return sf.SelectElement("a:schemeClr")
}

// SrgbVal returns the explicit RGB hex value, if the fill is an srgbClr.
func (f *Fill) SrgbVal() (string, bool) {
	sf := f.SolidFill()
	if sf == nil {
		return "", false
	}
	e := sf.SelectElement("a:srgbClr")
	if e == nil {
		return "", false
	}
	return e.SelectAttrValue("val", ""), true
}

// SchemeVal returns the theme slot name, if the fill is a schemeClr.
func (f *Fill) SchemeVal() (string, bool) {
	sf := f.SolidFill()
	if sf == nil {
		return "", false
	}
	e := sf.SelectElement("a:schemeClr")
	if e == nil {
		return "", false
	}
	return e.SelectAttrValue("val", ""), true
}

// SetSrgb replaces the fill with <a:solidFill><a:srgbClr val="..."/>.
// The hex value must already be validated and uppercased.
func (f *Fill) SetSrgb(hex string) {
	f.setColor("a:srgbClr", hex)
}

// SetScheme replaces the fill with <a:solidFill><a:schemeClr val="..."/>.
func (f *Fill) SetScheme(slot string) {
	f.setColor("a:schemeClr", slot)
}

func (f *Fill) setColor(tag, val string) {
	sf := f.SolidFill()
	if sf == nil {
		for _, kind := range fillKinds {
			if e := f.parent.SelectElement(kind); e != nil {
				f.parent.RemoveChild(e)
			}
		}
		sf = etree.NewElement("a:solidFill")
		insertBeforeAny(f.parent, sf, fillSuccessors)
	}
	// Swapping color kind keeps the lum adjustments of the old element.
	var lumMod, lumOff *etree.Element
	if old := f.colorElement(); old != nil {
		lumMod = old.SelectElement("a:lumMod")
		lumOff = old.SelectElement("a:lumOff")
	}
	for _, child := range sf.ChildElements() {
		sf.RemoveChild(child)
	}
	clr := sf.CreateElement(tag)
	clr.CreateAttr("val", val)
	if lumMod != nil {
		clr.AddChild(lumMod)
	}
	if lumOff != nil {
		clr.AddChild(lumOff)
	}
}

// Brightness reads the luminance adjustment of the fill color as a signed
// fraction. lumMod+lumOff encode a lighter color (positive), lumMod alone a
// darker one (negative); neither means no adjustment.
func (f *Fill) Brightness() float64 {
	clr := f.colorElement()
	if clr == nil {
		return 0
	}
	lumMod := clr.SelectElement("a:lumMod")
	lumOff := clr.SelectElement("a:lumOff")
	switch {
	case lumOff != nil:
		v, err := ParsePercentage(lumOff.SelectAttrValue("val", "0"))
		if err != nil {
			return 0
		}
		return float64(v) / PercentUnit
	case lumMod != nil:
		v, err := ParsePercentage(lumMod.SelectAttrValue("val", "0"))
		if err != nil {
			return 0
		}
		return float64(v)/PercentUnit - 1
	default:
		return 0
	}
}

// SetBrightness writes the luminance adjustment for the fill color.
// b must be in [-1.0, 1.0] and the fill must already carry a color.
func (f *Fill) SetBrightness(b float64) error {
	if b < -1.0 || b > 1.0 {
		return fmt.Errorf("oxml: brightness must be in range -1.0 to 1.0, got %v", b)
	}
	clr := f.colorElement()
	if clr == nil {
		return ErrNoFill
	}
	for _, tag := range []string{"a:lumMod", "a:lumOff"} {
		if e := clr.SelectElement(tag); e != nil {
			clr.RemoveChild(e)
		}
	}
	switch {
	case b > 0:
		addPercent(clr, "a:lumMod", 1-b)
		addPercent(clr, "a:lumOff", b)
	case b < 0:
		addPercent(clr, "a:lumMod", 1+b)
	}
	return nil
}

func addPercent(clr *etree.Element, tag string, frac float64) {
	e := clr.CreateElement(tag)
	e.CreateAttr("val", FormatPercentage(int(math.Round(frac*PercentUnit))))
}

// insertBeforeAny inserts el before the first child of parent whose
// prefixed tag appears in successors, or appends it when none is present.
func insertBeforeAny(parent *etree.Element, el *etree.Element, successors []string) {
	for _, tag := range successors {
		if succ := parent.SelectElement(tag); succ != nil {
			parent.InsertChildAt(succ.Index(), el)
			return
		}
	}
	parent.AddChild(el)
}
