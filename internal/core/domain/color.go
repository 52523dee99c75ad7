package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// hexDigits matches a color body of exactly six hex digits.
var hexDigits = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// RGB is a color with 8-bit channels.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// HSL is a color in the hue-saturation-lightness model.
// H is in degrees [0,360], S and L are percentages [0,100].
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// NewHSL validates the ranges of an HSL triple.
func NewHSL(h, s, l float64) (HSL, error) {
	switch {
	case h < 0 || h > 360:
		return HSL{}, zerr.With(Detail(ErrInvalidHSLValues, "field", "hue"), "value", h)
	case s < 0 || s > 100:
		return HSL{}, zerr.With(Detail(ErrInvalidHSLValues, "field", "saturation"), "value", s)
	case l < 0 || l > 100:
		return HSL{}, zerr.With(Detail(ErrInvalidHSLValues, "field", "lightness"), "value", l)
	}
	return HSL{H: h, S: s, L: l}, nil
}

// String renders the triple as "H S% L%".
func (c HSL) String() string {
	return FormatNumber(c.H) + " " + FormatNumber(c.S) + "% " + FormatNumber(c.L) + "%"
}

// ParseHSL reads hue, saturation and lightness tokens. A trailing % is optional.
func ParseHSL(args []string) (HSL, error) {
	if len(args) != 3 {
		return HSL{}, zerr.With(Detail(ErrInvalidHSLValues, "expected", "H S% L%"), "got", strings.Join(args, " "))
	}

	h, err := ParseNumber(args[0], "hue")
	if err != nil {
		return HSL{}, err
	}
	s, err := ParseNumber(strings.TrimSuffix(args[1], "%"), "saturation")
	if err != nil {
		return HSL{}, err
	}
	l, err := ParseNumber(strings.TrimSuffix(args[2], "%"), "lightness")
	if err != nil {
		return HSL{}, err
	}

	return NewHSL(h, s, l)
}

// ParseHex strips an optional leading # and validates the six hex digits.
// The returned digits are lower-cased.
func ParseHex(token string) (string, error) {
	digits := strings.TrimPrefix(token, "#")
	if !hexDigits.MatchString(digits) {
		return "", Detail(ErrInvalidHexFormat, "value", token)
	}
	return strings.ToLower(digits), nil
}

// ColorDirection names which way a color conversion goes.
type ColorDirection string

const (
	// HexToHSL converts a #RRGGBB color to HSL.
	HexToHSL ColorDirection = "hex-to-hsl"
	// HSLToHex converts an HSL triple to #RRGGBB.
	HSLToHex ColorDirection = "hsl-to-hex"
)

// DetectColorDirection picks the conversion from the shape of the arguments.
// A leading # selects HEX input. So does a lone token of six hex digits,
// since shells treat an unquoted # as a comment.
func DetectColorDirection(args []string) ColorDirection {
	if len(args) > 0 && strings.HasPrefix(args[0], "#") {
		return HexToHSL
	}
	if len(args) == 1 && hexDigits.MatchString(args[0]) {
		return HexToHSL
	}
	return HSLToHex
}
