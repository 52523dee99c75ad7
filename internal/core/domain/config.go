package domain

// OutputFormat selects how conversion results are written to stdout.
type OutputFormat string

const (
	// OutputText is the human-readable line format.
	OutputText OutputFormat = "text"
	// OutputJSON writes the result object as JSON.
	OutputJSON OutputFormat = "json"
	// OutputYAML writes the result object as YAML.
	OutputYAML OutputFormat = "yaml"
)

// LogFormat selects the diagnostics format on stderr.
type LogFormat string

const (
	// LogPretty is the colored human-readable format.
	LogPretty LogFormat = "pretty"
	// LogJSON emits one JSON object per record.
	LogJSON LogFormat = "json"
)

// DefaultPrecision is the number of decimals shown for lengths.
const DefaultPrecision = 2

// MaxPrecision bounds the configurable number of decimals.
const MaxPrecision = 10

// Config holds the runtime settings read from the environment.
type Config struct {
	Output    OutputFormat
	LogFormat LogFormat
	Precision int
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Output:    OutputText,
		LogFormat: LogPretty,
		Precision: DefaultPrecision,
	}
}
