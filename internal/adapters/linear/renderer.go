// Package linear provides the plain-text renderer for conversion results.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.trai.ch/csscalc/internal/core/domain"
	"go.trai.ch/zerr"
)

// labelWidth pads unit labels so the values line up.
const labelWidth = 4

// Renderer implements ports.Renderer with human-readable lines on stdout.
type Renderer struct {
	stdout    io.Writer
	precision int

	mu sync.Mutex
}

// NewRenderer creates a new Renderer writing lengths with the given number of decimals.
func NewRenderer(stdout io.Writer, precision int) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if precision < 0 {
		precision = domain.DefaultPrecision
	}
	return &Renderer{
		stdout:    stdout,
		precision: precision,
	}
}

// RenderUnits writes the input length followed by one line per unit.
func (r *Renderer) RenderUnits(result *domain.UnitConversion) error {
	if result == nil {
		return zerr.Wrap(domain.ErrRenderFailed, "no unit conversion to render")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Conversions for %s%s:\n", domain.FormatNumber(result.Input.Value), result.Input.Unit)
	for _, l := range result.Conversions {
		label := fmt.Sprintf("%-*s", labelWidth, l.Unit)
		fmt.Fprintf(&b, "%s: %s%s\n", label, domain.FormatFixed(l.Value, r.precision), l.Unit)
	}

	return r.write(b.String())
}

// RenderColor writes the input and output sides of a color conversion.
func (r *Renderer) RenderColor(result *domain.ColorConversion) error {
	if result == nil {
		return zerr.Wrap(domain.ErrRenderFailed, "no color conversion to render")
	}

	var b strings.Builder
	switch result.Direction {
	case domain.HexToHSL:
		b.WriteString("HEX to HSL conversion:\n")
		fmt.Fprintf(&b, "HEX: %s\n", result.Hex)
		fmt.Fprintf(&b, "HSL: %s\n", result.HSL)
	case domain.HSLToHex:
		b.WriteString("HSL to HEX conversion:\n")
		fmt.Fprintf(&b, "HSL: %s\n", result.HSL)
		fmt.Fprintf(&b, "HEX: %s\n", result.Hex)
	default:
		return domain.Detail(domain.ErrRenderFailed, "direction", string(result.Direction))
	}

	return r.write(b.String())
}

func (r *Renderer) write(s string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := io.WriteString(r.stdout, s); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRenderFailed, err)
	}
	return nil
}
