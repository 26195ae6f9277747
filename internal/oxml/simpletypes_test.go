package oxml

import (
	"testing"
)

func TestParseHexColorRGB(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "uppercase passthrough", in: "3C2F80", want: "3C2F80"},
		{name: "lowercase normalized", in: "3c2f80", want: "3C2F80"},
		{name: "too short", in: "FFF", wantErr: true},
		{name: "too long", in: "FF00FF00", wantErr: true},
		{name: "not hex", in: "GGHHII", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColorRGB(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHexColorRGB(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHexColorRGB(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexColorRGB(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePercentage(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "integer form", in: "75000", want: 75000},
		{name: "negative integer", in: "-40000", want: -40000},
		{name: "percent literal", in: "75%", want: 75000},
		{name: "fractional percent", in: "12.5%", want: 12500},
		{name: "negative percent", in: "-25%", want: -25000},
		{name: "garbage", in: "abc", wantErr: true},
		{name: "garbage percent", in: "x%", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePercentage(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePercentage(%q) = %d, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePercentage(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePercentage(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestRangeValidators(t *testing.T) {
	if err := ValidateSlideID(255); err == nil {
		t.Error("ValidateSlideID(255) should fail, minimum is 256")
	}
	if err := ValidateSlideID(256); err != nil {
		t.Errorf("ValidateSlideID(256): %v", err)
	}
	if err := ValidateSlideSizeCoordinate(914399); err == nil {
		t.Error("ValidateSlideSizeCoordinate below one inch should fail")
	}
	if err := ValidateSlideSizeCoordinate(9144000); err != nil {
		t.Errorf("ValidateSlideSizeCoordinate(9144000): %v", err)
	}
	if err := ValidateSlideSizeCoordinate(51206401); err == nil {
		t.Error("ValidateSlideSizeCoordinate above 56 inches should fail")
	}
	if err := ValidateUnsignedInt(-1); err == nil {
		t.Error("ValidateUnsignedInt(-1) should fail")
	}
	if err := ValidateUnsignedInt(4294967295); err != nil {
		t.Errorf("ValidateUnsignedInt(max): %v", err)
	}
}
