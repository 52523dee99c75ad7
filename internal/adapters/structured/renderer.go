// Package structured renders conversion results as JSON or YAML documents.
package structured

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"go.trai.ch/csscalc/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Renderer implements ports.Renderer for machine-readable output.
type Renderer struct {
	stdout io.Writer
	format domain.OutputFormat

	mu sync.Mutex
}

// NewRenderer creates a Renderer for the given format. Only OutputJSON and
// OutputYAML are structured; anything else is rejected at render time.
func NewRenderer(stdout io.Writer, format domain.OutputFormat) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Renderer{
		stdout: stdout,
		format: format,
	}
}

// RenderUnits encodes the unit conversion result.
func (r *Renderer) RenderUnits(result *domain.UnitConversion) error {
	if result == nil {
		return zerr.Wrap(domain.ErrRenderFailed, "no unit conversion to render")
	}
	return r.encode(result)
}

// RenderColor encodes the color conversion result.
func (r *Renderer) RenderColor(result *domain.ColorConversion) error {
	if result == nil {
		return zerr.Wrap(domain.ErrRenderFailed, "no color conversion to render")
	}
	return r.encode(result)
}

func (r *Renderer) encode(v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.format {
	case domain.OutputJSON:
		enc := json.NewEncoder(r.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return r.fail(err)
		}
	case domain.OutputYAML:
		enc := yaml.NewEncoder(r.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return r.fail(err)
		}
		if err := enc.Close(); err != nil {
			return r.fail(err)
		}
	default:
		return domain.Detail(domain.ErrRenderFailed, "format", string(r.format))
	}
	return nil
}

func (r *Renderer) fail(err error) error {
	return zerr.With(fmt.Errorf("%w: %w", domain.ErrRenderFailed, err), "format", string(r.format))
}
