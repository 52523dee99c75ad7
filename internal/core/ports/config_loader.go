package ports

import "go.trai.ch/csscalc/internal/core/domain"

// ConfigLoader defines the interface for loading runtime settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings and fills unset values with defaults.
	Load() (*domain.Config, error)
}
