package deck

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"slidekit/internal/oxml"
)

// ErrNoColor is returned when brightness is adjusted on a format that has
// no color applied yet. Set an RGB or theme color first.
var ErrNoColor = errors.New("deck: no color applied; set a color before adjusting brightness")

// ColorFormat reads and writes the color of one formatting target, such as
// a font. A format starts with no color (Type returns ColorTypeNone) and
// acquires one through SetRGB or SetTheme.
type ColorFormat struct {
	fill *oxml.Fill
}

func newColorFormat(parent *etree.Element) *ColorFormat {
	return &ColorFormat{fill: oxml.NewFill(parent)}
}

// Type reports how the color is specified: none, explicit RGB, or a theme
// slot reference.
func (c *ColorFormat) Type() ColorType {
	if _, ok := c.fill.SrgbVal(); ok {
		return ColorTypeRGB
	}
	if val, ok := c.fill.SchemeVal(); ok {
		if _, known := ThemeColorFromName(val); known {
			return ColorTypeTheme
		}
	}
	return ColorTypeNone
}

// RGB returns the explicit color value. The result is only meaningful when
// Type is ColorTypeRGB; otherwise it is zero.
func (c *ColorFormat) RGB() RGBColor {
	hex, ok := c.fill.SrgbVal()
	if !ok {
		return 0
	}
	rgb, err := RGBFromHex(hex)
	if err != nil {
		return 0
	}
	return rgb
}

// SetRGB applies an explicit color, replacing any theme color reference.
func (c *ColorFormat) SetRGB(rgb RGBColor) {
	c.fill.SetSrgb(rgb.String())
}

// Theme returns the theme slot the color references. The result is only
// meaningful when Type is ColorTypeTheme; otherwise it is ThemeColorNone.
func (c *ColorFormat) Theme() ThemeColor {
	val, ok := c.fill.SchemeVal()
	if !ok {
		return ThemeColorNone
	}
	tc, known := ThemeColorFromName(val)
	if !known {
		return ThemeColorNone
	}
	return tc
}

// SetTheme applies a theme color reference, replacing any explicit value.
func (c *ColorFormat) SetTheme(tc ThemeColor) error {
	val, ok := schemeClrVals[tc]
	if !ok {
		return fmt.Errorf("deck: invalid theme color %v", tc)
	}
	c.fill.SetScheme(val)
	return nil
}

// Brightness returns the luminance adjustment of the color as a signed
// fraction: -0.25 is 25% darker, 0.4 is 40% lighter, 0 is unadjusted.
func (c *ColorFormat) Brightness() float64 {
	return c.fill.Brightness()
}

// SetBrightness adjusts the color's luminance. b must be in [-1.0, 1.0]
// and a color must already be applied.
func (c *ColorFormat) SetBrightness(b float64) error {
	err := c.fill.SetBrightness(b)
	if errors.Is(err, oxml.ErrNoFill) {
		return ErrNoColor
	}
	return err
}
