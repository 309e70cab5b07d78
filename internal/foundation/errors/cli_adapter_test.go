package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitOK},
		{name: "issues found", err: GateError("found 3 stability issues").Build(), expected: ExitIssuesFound},
		{name: "missing project root", err: NotFoundError("project root does not exist").Build(), expected: ExitUsage},
		{name: "validation error", err: ValidationError("bad flag").Build(), expected: ExitUsage},
		{name: "config error", err: ConfigError("bad config").Build(), expected: ExitConfig},
		{name: "filesystem error", err: FileSystemError("write failed").Build(), expected: ExitProcessing},
		{name: "internal error", err: InternalError("boom").Build(), expected: ExitInternal},
		{
			name:     "wrapped classified error",
			err:      fmt.Errorf("outer: %w", ConfigError("bad config").Build()),
			expected: ExitConfig,
		},
		{name: "unclassified error", err: &customError{msg: "unknown error"}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{
			name:     "internal error in non-verbose mode",
			err:      InternalError("internal issue").Build(),
			expected: "Internal error occurred (use -v for details)",
		},
		{
			name:     "usage error shows message",
			err:      NotFoundError("Project root '/nope' does not exist").Build(),
			expected: "Error: Project root '/nope' does not exist",
		},
		{
			name:     "filesystem error shows cause",
			err:      WrapError(stderrors.New("permission denied"), CategoryFileSystem, "write doc stub").Build(),
			expected: "Error: write doc stub: permission denied",
		},
		{
			name:     "config error shows cause",
			err:      WrapError(stderrors.New("failed to unmarshal config"), CategoryConfig, "failed to load configuration").Build(),
			expected: "Error: failed to load configuration: failed to unmarshal config",
		},
		{name: "gate error shows message", err: GateError("3 stability issues found").Build(), expected: "Error: 3 stability issues found"},
		{name: "unclassified error", err: &customError{msg: "unknown error"}, expected: "Error: unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.FormatError(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatErrorVerbose(t *testing.T) {
	adapter := NewCLIErrorAdapter(true, slog.Default())
	err := InternalError("internal issue").Build()
	assert.Equal(t, "[internal:fatal] internal issue", adapter.FormatError(err))
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logs, out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	adapter := NewCLIErrorAdapter(false, logger)
	adapter.out = &out

	var code int
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(FileSystemError("write failed").WithContext("path", "docs/a.md").Build())

	require.Equal(t, ExitProcessing, code)
	assert.Equal(t, "Error: write failed\n", out.String())
	assert.Contains(t, logs.String(), "category=filesystem")
	assert.Contains(t, logs.String(), "path=docs/a.md")
}

func TestCLIErrorAdapter_HandleErrorNil(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())
	called := false
	adapter.exit = func(int) { called = true }

	adapter.HandleError(nil)
	assert.False(t, called)
}

// customError is a test helper for unclassified errors
type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}
