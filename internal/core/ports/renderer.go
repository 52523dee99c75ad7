package ports

import "go.trai.ch/csscalc/internal/core/domain"

// Renderer writes conversion results to the user.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderUnits writes the result of a unit conversion.
	RenderUnits(conv *domain.UnitConversion) error
	// RenderColor writes the result of a color conversion.
	RenderColor(conv *domain.ColorConversion) error
}
