package imaging

import (
	"image/color"
	"math"
	"testing"
)

func TestToHSV_KnownColors(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  HSV
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, HSV{0, 1, 1}},
		{"pure green", color.RGBA{0, 255, 0, 255}, HSV{120, 1, 1}},
		{"pure blue", color.RGBA{0, 0, 255, 255}, HSV{240, 1, 1}},
		{"yellow", color.RGBA{255, 255, 0, 255}, HSV{60, 1, 1}},
		{"orange", color.RGBA{255, 128, 0, 255}, HSV{30.1, 1, 1}},
		{"white", color.RGBA{255, 255, 255, 255}, HSV{0, 0, 1}},
		{"black", color.RGBA{0, 0, 0, 255}, HSV{0, 0, 0}},
		{"half gray", color.RGBA{128, 128, 128, 255}, HSV{0, 0, 0.502}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToHSV(tt.color)
			if !ok {
				t.Fatal("ToHSV rejected an opaque color")
			}
			if math.Abs(got.H-tt.want.H) > 0.5 {
				t.Errorf("H: got %.2f, want %.2f", got.H, tt.want.H)
			}
			if math.Abs(got.S-tt.want.S) > 0.01 {
				t.Errorf("S: got %.3f, want %.3f", got.S, tt.want.S)
			}
			if math.Abs(got.V-tt.want.V) > 0.01 {
				t.Errorf("V: got %.3f, want %.3f", got.V, tt.want.V)
			}
		})
	}
}

func TestToHSV_Transparent(t *testing.T) {
	if _, ok := ToHSV(color.RGBA{0, 0, 0, 0}); ok {
		t.Error("fully transparent pixel should not convert")
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{255, 128, 64, 255}); got != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#FF0000", color.RGBA{255, 0, 0, 255}, false},
		{"00FF00", color.RGBA{0, 255, 0, 255}, false},
		{"#0000FF80", color.RGBA{0, 0, 255, 128}, false},
		{"", color.RGBA{}, true},
		{"#FFF", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHexColor(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}
