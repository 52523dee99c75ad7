package domain

import "go.trai.ch/zerr"

var (
	// ErrUsage is returned when the command line has the wrong number of arguments.
	ErrUsage = zerr.New("invalid usage")

	// ErrUnknownCommand is returned when the command is not one of unit, u, color or c.
	ErrUnknownCommand = zerr.New("unknown command, use 'unit' (u) or 'color' (c)")

	// ErrUnsupportedUnit is returned when a length unit is not px, rem or em.
	ErrUnsupportedUnit = zerr.New("unsupported unit")

	// ErrInvalidNumber is returned when a numeric argument cannot be parsed.
	ErrInvalidNumber = zerr.New("argument must be a number")

	// ErrInvalidHexFormat is returned when a HEX color is not exactly six hex digits.
	ErrInvalidHexFormat = zerr.New("invalid HEX color format, use #RRGGBB")

	// ErrInvalidHSLValues is returned when HSL components are missing or out of range.
	ErrInvalidHSLValues = zerr.New("invalid HSL values")

	// ErrInvalidConfig is returned when an environment setting has an invalid value.
	ErrInvalidConfig = zerr.New("invalid configuration value")

	// ErrRenderFailed is returned when a conversion result cannot be written.
	ErrRenderFailed = zerr.New("failed to render result")
)

// Detail attaches a key-value pair to a sentinel error.
// The result still matches the sentinel with errors.Is.
func Detail(err error, key string, value any) error {
	return zerr.With(zerr.Wrap(err, ""), key, value)
}
