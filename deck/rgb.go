package deck

import (
	"fmt"
	"strconv"

	"slidekit/internal/oxml"
)

// RGBColor is an explicit color packed as 0xRRGGBB.
type RGBColor uint32

// RGB builds an RGBColor from channel values.
func RGB(r, g, b byte) RGBColor {
	return RGBColor(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBFromHex parses a six-character hex string such as "3C2F80". Case is
// accepted either way; String always renders uppercase.
func RGBFromHex(s string) (RGBColor, error) {
	norm, err := oxml.ParseHexColorRGB(s)
	if err != nil {
		return 0, err
	}
	n, _ := strconv.ParseUint(norm, 16, 32)
	return RGBColor(n), nil
}

// R returns the red channel.
func (c RGBColor) R() byte { return byte(c >> 16) }

// G returns the green channel.
func (c RGBColor) G() byte { return byte(c >> 8) }

// B returns the blue channel.
func (c RGBColor) B() byte { return byte(c) }

// String renders the color in the XML attribute form, e.g. "3C2F80".
func (c RGBColor) String() string {
	return fmt.Sprintf("%06X", uint32(c))
}
