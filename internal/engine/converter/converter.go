// Package converter implements the unit and color conversions.
package converter

import (
	"math"

	"go.trai.ch/csscalc/internal/core/domain"
	"go.trai.ch/csscalc/internal/core/ports"
	"go.trai.ch/zerr"
)

// Converter performs length and color conversions.
type Converter struct {
	space ports.ColorSpace
}

// NewConverter creates a new Converter backed by the given color space.
func NewConverter(space ports.ColorSpace) *Converter {
	return &Converter{space: space}
}

// ConvertLength normalizes in to rem and expands it into every supported unit.
func (c *Converter) ConvertLength(in domain.Length) (*domain.UnitConversion, error) {
	rem, err := domain.ToRem(in.Value, in.Unit)
	if err != nil {
		return nil, err
	}

	expanded := domain.FromRem(rem)
	units := domain.Units()
	conversions := make([]domain.Length, 0, len(units))
	for _, u := range units {
		conversions = append(conversions, domain.Length{Value: expanded[u], Unit: u})
	}

	return &domain.UnitConversion{
		Input:       in,
		Rem:         rem,
		Conversions: conversions,
	}, nil
}

// HexToHSL converts a #RRGGBB token. The HSL result is rounded to whole
// degrees and percents, with hue in [0,360).
func (c *Converter) HexToHSL(token string) (*domain.ColorConversion, error) {
	hex, err := domain.ParseHex(token)
	if err != nil {
		return nil, err
	}

	rgb, err := c.space.HexToRGB(hex)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to decode HEX color")
	}

	return &domain.ColorConversion{
		Direction: domain.HexToHSL,
		Hex:       "#" + hex,
		RGB:       rgb,
		HSL:       roundHSL(c.space.RGBToHSL(rgb)),
	}, nil
}

// HSLToHex converts a validated HSL triple to #rrggbb.
func (c *Converter) HSLToHex(hsl domain.HSL) (*domain.ColorConversion, error) {
	if _, err := domain.NewHSL(hsl.H, hsl.S, hsl.L); err != nil {
		return nil, err
	}

	rgb := c.space.HSLToRGB(hsl)

	return &domain.ColorConversion{
		Direction: domain.HSLToHex,
		Hex:       c.space.RGBToHex(rgb),
		RGB:       rgb,
		HSL:       hsl,
	}, nil
}

func roundHSL(hsl domain.HSL) domain.HSL {
	return domain.HSL{
		H: normalizeHue(math.Round(hsl.H)),
		S: math.Round(hsl.S),
		L: math.Round(hsl.L),
	}
}

// normalizeHue maps any angle into [0,360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
