// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/csscalc/internal/adapters/colorspace"
	_ "go.trai.ch/csscalc/internal/adapters/config"
	_ "go.trai.ch/csscalc/internal/adapters/linear"
	_ "go.trai.ch/csscalc/internal/adapters/logger"
	_ "go.trai.ch/csscalc/internal/adapters/structured"
	// Register app and engine nodes.
	_ "go.trai.ch/csscalc/internal/app"
	_ "go.trai.ch/csscalc/internal/engine/converter"
)
