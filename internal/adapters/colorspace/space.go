// Package colorspace implements ports.ColorSpace on top of go-colorful.
package colorspace

import (
	"github.com/lucasb-eyer/go-colorful"
	"go.trai.ch/csscalc/internal/core/domain"
	"go.trai.ch/zerr"
)

// Space implements ports.ColorSpace.
type Space struct{}

// New creates a new Space.
func New() *Space {
	return &Space{}
}

// HexToRGB parses six hex digits without the leading #.
func (s *Space) HexToRGB(hex string) (domain.RGB, error) {
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return domain.RGB{}, zerr.With(zerr.Wrap(domain.ErrInvalidHexFormat, err.Error()), "value", hex)
	}
	return toRGB(c), nil
}

// RGBToHSL converts an RGB color to HSL with hue in [0,360).
func (s *Space) RGBToHSL(rgb domain.RGB) domain.HSL {
	h, sat, l := fromRGB(rgb).Hsl()
	return domain.HSL{H: h, S: sat * 100, L: l * 100}
}

// HSLToRGB converts an HSL color to RGB, rounding each channel.
func (s *Space) HSLToRGB(hsl domain.HSL) domain.RGB {
	return toRGB(colorful.Hsl(hsl.H, hsl.S/100, hsl.L/100))
}

// RGBToHex formats a color as #rrggbb.
func (s *Space) RGBToHex(rgb domain.RGB) string {
	return fromRGB(rgb).Hex()
}

func fromRGB(rgb domain.RGB) colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}
}

func toRGB(c colorful.Color) domain.RGB {
	r, g, b := c.Clamped().RGB255()
	return domain.RGB{R: r, G: g, B: b}
}
