// Package oxml provides the raw XML layer for OOXML presentation parts:
// simple-type validation and string translation for attribute values, and
// helpers for manipulating DrawingML elements in place.
//
// Simple type names follow the ST_* types in the ECMA-376 schemas. Values
// travel as strings in XML attributes; this package converts them to and
// from Go types with the range checks the schemas require.
package oxml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PercentUnit is the ST_Percentage value that means 100%. Percentages are
// stored as thousandths of a percent.
const PercentUnit = 100000

// ParseHexColorRGB validates an ST_HexColorRGB attribute value and returns
// it normalized to uppercase. The value must be exactly six hex characters.
func ParseHexColorRGB(s string) (string, error) {
	if len(s) != 6 {
		return "", fmt.Errorf("RGB string must be six characters long, got %q", s)
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return "", fmt.Errorf("RGB string must be valid hex string, got %q", s)
	}
	return strings.ToUpper(s), nil
}

// ParsePercentage converts an ST_Percentage attribute value to thousandths
// of a percent. The XML form is either a plain integer ("75000") or a float
// literal with a '%' suffix ("75%", "-12.5%").
func ParsePercentage(s string) (int, error) {
	if strings.HasSuffix(s, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid percent literal %q: %w", s, err)
		}
		return int(math.Round(f * 1000)), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage value %q: %w", s, err)
	}
	return n, nil
}

// FormatPercentage renders thousandths of a percent in the integer XML form.
func FormatPercentage(n int) string {
	return strconv.Itoa(n)
}

// ValidateUnsignedInt checks the xsd:unsignedInt range.
func ValidateUnsignedInt(n int64) error {
	return validateRange("unsignedInt", n, 0, 4294967295)
}

// ValidateSlideID checks the ST_SlideId range.
func ValidateSlideID(n int64) error {
	return validateRange("slide id", n, 256, 2147483647)
}

// ValidateSlideSizeCoordinate checks the ST_SlideSizeCoordinate range,
// an EMU value between one and fifty-six inches.
func ValidateSlideSizeCoordinate(n int64) error {
	return validateRange("slide size coordinate", n, 914400, 51206400)
}

// ValidateCoordinate32 checks the ST_Coordinate32 range.
func ValidateCoordinate32(n int64) error {
	return validateRange("coordinate", n, math.MinInt32, math.MaxInt32)
}

func validateRange(what string, n, min, max int64) error {
	if n < min || n > max {
		return fmt.Errorf("%s must be in range %d to %d inclusive, got %d", what, min, max, n)
	}
	return nil
}
