package deck

import "fmt"

// Length is a distance in English Metric Units, the native coordinate unit
// of OOXML drawings. 914400 EMU equal one inch.
type Length int64

const (
	EMU  Length = 1
	Pt   Length = 12700
	Cm   Length = 360000
	Mm   Length = 36000
	Inch Length = 914400
)

// Inches converts l to inches.
func (l Length) Inches() float64 { return float64(l) / float64(Inch) }

// Points converts l to points.
func (l Length) Points() float64 { return float64(l) / float64(Pt) }

// Centimeters converts l to centimeters.
func (l Length) Centimeters() float64 { return float64(l) / float64(Cm) }

func (l Length) String() string {
	return fmt.Sprintf("%d EMU", int64(l))
}

// Inches returns a Length of n inches.
func Inches(n float64) Length { return Length(n * float64(Inch)) }

// Points returns a Length of n points.
func Points(n float64) Length { return Length(n * float64(Pt)) }

// Centimeters returns a Length of n centimeters.
func Centimeters(n float64) Length { return Length(n * float64(Cm)) }
