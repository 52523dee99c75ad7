package structured_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/csscalc/internal/adapters/structured"
	"go.trai.ch/csscalc/internal/core/domain"
)

var pixels = &domain.UnitConversion{
	Input: domain.Length{Value: 16, Unit: domain.UnitPx},
	Rem:   1,
	Conversions: []domain.Length{
		{Value: 16, Unit: domain.UnitPx},
		{Value: 1, Unit: domain.UnitRem},
		{Value: 1, Unit: domain.UnitEm},
	},
}

var red = &domain.ColorConversion{
	Direction: domain.HexToHSL,
	Hex:       "#ff0000",
	RGB:       domain.RGB{R: 255},
	HSL:       domain.HSL{H: 0, S: 100, L: 50},
}

func TestRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := structured.NewRenderer(&buf, domain.OutputJSON)

	require.NoError(t, r.RenderUnits(pixels))
	assert.JSONEq(t, `{
		"input": {"value": 16, "unit": "px"},
		"rem": 1,
		"conversions": [
			{"value": 16, "unit": "px"},
			{"value": 1, "unit": "rem"},
			{"value": 1, "unit": "em"}
		]
	}`, buf.String())

	buf.Reset()
	require.NoError(t, r.RenderColor(red))
	assert.JSONEq(t, `{
		"direction": "hex-to-hsl",
		"hex": "#ff0000",
		"rgb": {"r": 255, "g": 0, "b": 0},
		"hsl": {"h": 0, "s": 100, "l": 50}
	}`, buf.String())
}

func TestRenderer_YAML(t *testing.T) {
	var buf bytes.Buffer
	r := structured.NewRenderer(&buf, domain.OutputYAML)

	require.NoError(t, r.RenderUnits(pixels))
	assert.YAMLEq(t, `
input:
  value: 16
  unit: px
rem: 1
conversions:
  - value: 16
    unit: px
  - value: 1
    unit: rem
  - value: 1
    unit: em
`, buf.String())

	buf.Reset()
	require.NoError(t, r.RenderColor(red))
	assert.YAMLEq(t, `
direction: hex-to-hsl
hex: "#ff0000"
rgb: {r: 255, g: 0, b: 0}
hsl: {h: 0, s: 100, l: 50}
`, buf.String())
}

func TestRenderer_Errors(t *testing.T) {
	t.Run("nil results", func(t *testing.T) {
		r := structured.NewRenderer(&bytes.Buffer{}, domain.OutputJSON)
		require.ErrorIs(t, r.RenderUnits(nil), domain.ErrRenderFailed)
		require.ErrorIs(t, r.RenderColor(nil), domain.ErrRenderFailed)
	})

	t.Run("text is not structured", func(t *testing.T) {
		var buf bytes.Buffer
		r := structured.NewRenderer(&buf, domain.OutputText)
		require.ErrorIs(t, r.RenderUnits(pixels), domain.ErrRenderFailed)
		assert.Empty(t, buf.String())
	})
}
