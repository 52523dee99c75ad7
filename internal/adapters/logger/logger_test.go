package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/csscalc/internal/adapters/logger"
	"go.trai.ch/csscalc/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("line1\nline2"),
			goldenName: "error_multiline",
		},
		{
			name:       "sentinel with detail",
			err:        domain.Detail(domain.ErrUnsupportedUnit, "unit", "pt"),
			goldenName: "error_detail",
		},
		{
			name:       "sentinel with stacked details",
			err:        zerr.With(domain.Detail(domain.ErrInvalidNumber, "field", "hue"), "value", "abc"),
			goldenName: "error_detail_chain",
		},
		{
			name: "three level chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("root cause"),
					"middle layer",
				),
				"outer layer",
			),
			goldenName: "error_chain_zerr_three",
		},
		{
			name: "wrapped detail",
			err: zerr.Wrap(
				zerr.With(domain.Detail(domain.ErrInvalidConfig, "variable", "CSSCALC_OUTPUT"), "value", "xml"),
				"failed to load configuration",
			),
			goldenName: "error_chain_wrapped_detail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(domain.Detail(domain.ErrUnsupportedUnit, "unit", "pt"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "unsupported unit", record["error"])
	assert.Equal(t, "pt", record["unit"])
}

func TestLogger_SetJSONPreservesOutput(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(errors.New("first"))
	lg.SetJSON(false)
	lg.Error(errors.New("second"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.True(t, json.Valid(lines[0]))
	assert.Equal(t, "✗ Error: second", string(lines[1]))
}

func TestNew(t *testing.T) {
	lg := logger.New()
	assert.NotNil(t, lg)
}
