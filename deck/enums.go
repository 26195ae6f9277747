// Package deck is a document model for PowerPoint (.pptx) files. It opens a
// presentation package, exposes slides, shapes, text runs and their fonts,
// and writes the package back out with untouched parts preserved byte for
// byte.
package deck

import "fmt"

// ColorType identifies how a color is specified.
type ColorType int

const (
	// ColorTypeNone means no color has been applied.
	ColorTypeNone ColorType = iota
	// ColorTypeRGB is an explicit red/green/blue value.
	ColorTypeRGB
	// ColorTypeTheme is a reference to a named slot in the shared theme.
	ColorTypeTheme
)

func (t ColorType) String() string {
	switch t {
	case ColorTypeNone:
		return "none"
	case ColorTypeRGB:
		return "rgb"
	case ColorTypeTheme:
		return "theme"
	default:
		return fmt.Sprintf("ColorType(%d)", int(t))
	}
}

// ThemeColor names a slot in the presentation's color scheme. The zero
// value means no theme color.
type ThemeColor int

const (
	ThemeColorNone ThemeColor = iota
	ThemeColorAccent1
	ThemeColorAccent2
	ThemeColorAccent3
	ThemeColorAccent4
	ThemeColorAccent5
	ThemeColorAccent6
	ThemeColorBackground1
	ThemeColorBackground2
	ThemeColorDark1
	ThemeColorDark2
	ThemeColorLight1
	ThemeColorLight2
	ThemeColorText1
	ThemeColorText2
	ThemeColorHyperlink
	ThemeColorFollowedHyperlink
)

// schemeClrVals maps theme slots to the a:schemeClr val attribute strings.
var schemeClrVals = map[ThemeColor]string{
	ThemeColorAccent1:           "accent1",
	ThemeColorAccent2:           "accent2",
	ThemeColorAccent3:           "accent3",
	ThemeColorAccent4:           "accent4",
	ThemeColorAccent5:           "accent5",
	ThemeColorAccent6:           "accent6",
	ThemeColorBackground1:       "bg1",
	ThemeColorBackground2:       "bg2",
	ThemeColorDark1:             "dk1",
	ThemeColorDark2:             "dk2",
	ThemeColorLight1:            "lt1",
	ThemeColorLight2:            "lt2",
	ThemeColorText1:             "tx1",
	ThemeColorText2:             "tx2",
	ThemeColorHyperlink:         "hlink",
	ThemeColorFollowedHyperlink: "folHlink",
}

var themeColorsByVal = invertThemeVals()

func invertThemeVals() map[string]ThemeColor {
	m := make(map[string]ThemeColor, len(schemeClrVals))
	for tc, val := range schemeClrVals {
		m[val] = tc
	}
	return m
}

func (tc ThemeColor) String() string {
	if val, ok := schemeClrVals[tc]; ok {
		return val
	}
	if tc == ThemeColorNone {
		return "none"
	}
	return fmt.Sprintf("ThemeColor(%d)", int(tc))
}

// ThemeColorFromName returns the theme slot for a schemeClr val string
// such as "accent1" or "dk2".
func ThemeColorFromName(name string) (ThemeColor, bool) {
	tc, ok := themeColorsByVal[name]
	return tc, ok
}

// ShapeType classifies a shape on a slide.
type ShapeType int

const (
	ShapeTypeUnknown ShapeType = iota
	ShapeTypeAutoShape
	ShapeTypeTextBox
	ShapeTypePicture
	// ShapeTypeMedia is a picture shape that plays audio or video.
	ShapeTypeMedia
	ShapeTypeGroup
	ShapeTypeGraphicFrame
)

func (t ShapeType) String() string {
	switch t {
	case ShapeTypeAutoShape:
		return "auto shape"
	case ShapeTypeTextBox:
		return "text box"
	case ShapeTypePicture:
		return "picture"
	case ShapeTypeMedia:
		return "media"
	case ShapeTypeGroup:
		return "group"
	case ShapeTypeGraphicFrame:
		return "graphic frame"
	default:
		return "unknown"
	}
}

// MediaType classifies the content a media shape plays.
type MediaType int

const (
	MediaTypeUnknown MediaType = iota
	MediaTypeMovie
	MediaTypeAudio
)

func (t MediaType) String() string {
	switch t {
	case MediaTypeMovie:
		return "movie"
	case MediaTypeAudio:
		return "audio"
	default:
		return "unknown"
	}
}
