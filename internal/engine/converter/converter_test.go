package converter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/csscalc/internal/adapters/colorspace"
	"go.trai.ch/csscalc/internal/core/domain"
	"go.trai.ch/csscalc/internal/core/ports/mocks"
	"go.trai.ch/csscalc/internal/engine/converter"
	"go.uber.org/mock/gomock"
)

func TestConverter_ConvertLength(t *testing.T) {
	c := converter.NewConverter(colorspace.New())

	got, err := c.ConvertLength(domain.Length{Value: 24, Unit: domain.UnitPx})
	require.NoError(t, err)

	assert.InDelta(t, 1.5, got.Rem, 1e-12)
	require.Len(t, got.Conversions, 3)
	assert.Equal(t, domain.Length{Value: 24, Unit: domain.UnitPx}, got.Conversions[0])
	assert.Equal(t, domain.Length{Value: 1.5, Unit: domain.UnitRem}, got.Conversions[1])
	assert.Equal(t, domain.Length{Value: 1.5, Unit: domain.UnitEm}, got.Conversions[2])

	_, err = c.ConvertLength(domain.Length{Value: 1, Unit: "vw"})
	require.ErrorIs(t, err, domain.ErrUnsupportedUnit)
}

func TestConverter_HexToHSL(t *testing.T) {
	c := converter.NewConverter(colorspace.New())

	tests := []struct {
		token string
		hex   string
		want  domain.HSL
	}{
		{token: "#ff0000", hex: "#ff0000", want: domain.HSL{H: 0, S: 100, L: 50}},
		{token: "#000000", hex: "#000000", want: domain.HSL{H: 0, S: 0, L: 0}},
		{token: "#FFFFFF", hex: "#ffffff", want: domain.HSL{H: 0, S: 0, L: 100}},
		{token: "008000", hex: "#008000", want: domain.HSL{H: 120, S: 100, L: 25}},
		{token: "#3366cc", hex: "#3366cc", want: domain.HSL{H: 220, S: 60, L: 50}},
		{token: "#220a21", hex: "#220a21", want: domain.HSL{H: 303, S: 55, L: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := c.HexToHSL(tt.token)
			require.NoError(t, err)
			assert.Equal(t, domain.HexToHSL, got.Direction)
			assert.Equal(t, tt.hex, got.Hex)
			assert.Equal(t, tt.want, got.HSL)
		})
	}
}

func TestConverter_HexToHSL_InvalidFormat(t *testing.T) {
	c := converter.NewConverter(colorspace.New())

	for _, token := range []string{"#fff", "#12345g", "red", ""} {
		_, err := c.HexToHSL(token)
		require.ErrorIs(t, err, domain.ErrInvalidHexFormat, "token %q", token)
	}
}

func TestConverter_HexToHSL_NormalizesHue(t *testing.T) {
	ctrl := gomock.NewController(t)
	space := mocks.NewMockColorSpace(ctrl)

	rgb := domain.RGB{R: 255, B: 2}
	space.EXPECT().HexToRGB("ff0002").Return(rgb, nil)
	space.EXPECT().RGBToHSL(rgb).Return(domain.HSL{H: 359.6, S: 100, L: 50.4})

	got, err := converter.NewConverter(space).HexToHSL("#ff0002")
	require.NoError(t, err)
	assert.Equal(t, domain.HSL{H: 0, S: 100, L: 50}, got.HSL)
}

func TestConverter_HSLToHex(t *testing.T) {
	c := converter.NewConverter(colorspace.New())

	tests := []struct {
		hsl  domain.HSL
		want string
	}{
		{hsl: domain.HSL{H: 0, S: 100, L: 50}, want: "#ff0000"},
		{hsl: domain.HSL{H: 120, S: 100, L: 25}, want: "#008000"},
		{hsl: domain.HSL{H: 0, S: 0, L: 0}, want: "#000000"},
		{hsl: domain.HSL{H: 0, S: 0, L: 100}, want: "#ffffff"},
		{hsl: domain.HSL{H: 240, S: 100, L: 50}, want: "#0000ff"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := c.HSLToHex(tt.hsl)
			require.NoError(t, err)
			assert.Equal(t, domain.HSLToHex, got.Direction)
			assert.Equal(t, tt.want, got.Hex)
			assert.Equal(t, tt.hsl, got.HSL)
		})
	}
}

func TestConverter_HSLToHex_OutOfRange(t *testing.T) {
	c := converter.NewConverter(colorspace.New())

	_, err := c.HSLToHex(domain.HSL{H: 400, S: 50, L: 50})
	require.ErrorIs(t, err, domain.ErrInvalidHSLValues)
}

func TestConverter_ColorRoundTrip(t *testing.T) {
	c := converter.NewConverter(colorspace.New())

	for _, hex := range []string{"#ff0000", "#00ff00", "#0000ff", "#808080", "#123456", "#abcdef", "#ff8800", "#7f00ff"} {
		toHSL, err := c.HexToHSL(hex)
		require.NoError(t, err)

		toHex, err := c.HSLToHex(toHSL.HSL)
		require.NoError(t, err)

		want, _ := colorspace.New().HexToRGB(hex[1:])
		assert.InDelta(t, int(want.R), int(toHex.RGB.R), 3, "color %s", hex)
		assert.InDelta(t, int(want.G), int(toHex.RGB.G), 3, "color %s", hex)
		assert.InDelta(t, int(want.B), int(toHex.RGB.B), 3, "color %s", hex)
	}
}
