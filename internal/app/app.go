// Package app implements the application layer for csscalc.
package app

import (
	"context"

	"go.trai.ch/csscalc/internal/core/domain"
	"go.trai.ch/csscalc/internal/core/ports"
	"go.trai.ch/csscalc/internal/engine/converter"
)

// App represents the main application logic.
type App struct {
	converter *converter.Converter
	renderer  ports.Renderer
}

// New creates a new App instance.
func New(conv *converter.Converter, renderer ports.Renderer) *App {
	return &App{
		converter: conv,
		renderer:  renderer,
	}
}

// WithRenderer replaces the renderer results are written to.
func (a *App) WithRenderer(renderer ports.Renderer) *App {
	a.renderer = renderer
	return a
}

// ConvertUnit converts a length given as "<value> <unit>" or "<value><unit>"
// into every supported unit and renders the result.
func (a *App) ConvertUnit(ctx context.Context, args []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	length, err := domain.ParseLength(args)
	if err != nil {
		return err
	}

	result, err := a.converter.ConvertLength(length)
	if err != nil {
		return err
	}

	return a.renderer.RenderUnits(result)
}

// ConvertColor converts a HEX color to HSL or an HSL triple to HEX,
// depending on the shape of the arguments, and renders the result.
func (a *App) ConvertColor(ctx context.Context, args []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(args) == 0 {
		return domain.Detail(domain.ErrUsage, "expected", "<#RRGGBB> or <H S% L%>")
	}

	var (
		result *domain.ColorConversion
		err    error
	)

	switch domain.DetectColorDirection(args) {
	case domain.HexToHSL:
		if len(args) > 1 {
			return domain.Detail(domain.ErrInvalidHexFormat, "value", args[0]+" "+args[1])
		}
		result, err = a.converter.HexToHSL(args[0])
	case domain.HSLToHex:
		hsl, parseErr := domain.ParseHSL(args)
		if parseErr != nil {
			return parseErr
		}
		result, err = a.converter.HSLToHex(hsl)
	}
	if err != nil {
		return err
	}

	return a.renderer.RenderColor(result)
}
