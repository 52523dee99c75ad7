package config

// Environment variables read by the loader.
const (
	// EnvOutput selects the result format: text, json or yaml.
	EnvOutput = "CSSCALC_OUTPUT"
	// EnvLogFormat selects the diagnostics format: pretty or json.
	EnvLogFormat = "CSSCALC_LOG_FORMAT"
	// EnvPrecision sets the number of decimals shown for lengths.
	EnvPrecision = "CSSCALC_PRECISION"
)
