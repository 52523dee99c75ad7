package ports

import "go.trai.ch/csscalc/internal/core/domain"

// ColorSpace converts between the RGB, HSL and HEX color representations.
// HSL values use degrees for hue and percentages for saturation and lightness;
// they are not rounded.
//
//go:generate mockgen -source=color_space.go -destination=mocks/mock_color_space.go -package=mocks
type ColorSpace interface {
	// HexToRGB parses six hex digits without the leading #.
	HexToRGB(hex string) (domain.RGB, error)
	// RGBToHSL converts an RGB color to HSL with hue in [0,360).
	RGBToHSL(rgb domain.RGB) domain.HSL
	// HSLToRGB converts an HSL color to RGB, rounding each channel.
	HSLToRGB(hsl domain.HSL) domain.RGB
	// RGBToHex formats a color as #rrggbb.
	RGBToHex(rgb domain.RGB) string
}
