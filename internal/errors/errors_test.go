package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrSnapshot,
		ErrRender,
		ErrLocale,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .nodeboard.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "snapshot error",
			code:       ErrSnapshot,
			message:    "Snapshot file not found",
			suggestion: "Point 'snapshot' at the file your agent writes",
		},
		{
			name:       "locale error",
			code:       ErrLocale,
			message:    "Unsupported locale 'xx'",
			suggestion: "Use one of: en, zh-CN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name:          "basic error formatting",
			err:           New(ErrConfig, "Invalid configuration", "Check .nodeboard.yaml syntax"),
			expectedParts: []string{"✗", "Invalid configuration", "Check .nodeboard.yaml syntax"},
		},
		{
			name:          "error without suggestion",
			err:           New(ErrRender, "Card too narrow", ""),
			expectedParts: []string{"Card too narrow"},
			notExpected:   []string{"\n\n"},
		},
		{
			name:          "error with cause",
			err:           WrapWithCode(errors.New("permission denied"), ErrSnapshot, "Cannot read snapshot", "Check permissions"),
			expectedParts: []string{"Cannot read snapshot", "permission denied", "Check permissions"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part)
			}
		})
	}
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("yaml: line 3: mapping values are not allowed here"),
		ErrSnapshot,
		"Snapshot file is not valid YAML",
		"Fix the syntax and try again",
	)

	lines := strings.Split(err.Error(), "\n")

	assert.True(t, strings.HasPrefix(lines[0], "✗ "), "first line should start with failure symbol")
	assert.Equal(t, "✗ Snapshot file is not valid YAML", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "  yaml: line 3: mapping values are not allowed here", lines[2])
	assert.Equal(t, "  Fix the syntax and try again", lines[4])
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	wrapped := Wrap(cause, "Snapshot truncated")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrSnapshot, wrapped.Code, "Wrap should default to ErrSnapshot code")
	assert.Equal(t, cause, wrapped.Cause)
}

func TestErrorsIsAndAs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := WrapWithCode(cause, ErrConfig, "Config error", "")

	assert.True(t, errors.Is(wrapped, cause))

	var nbErr *Error
	require.True(t, errors.As(fmt.Errorf("outer: %w", wrapped), &nbErr))
	assert.Equal(t, ErrConfig, nbErr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrSnapshot))
	assert.True(t, IsCode(fmt.Errorf("loading: %w", err), ErrConfig))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}

func TestExitError(t *testing.T) {
	err := NewExitError(2)

	assert.Equal(t, 2, err.Code)
	assert.Equal(t, "exit code 2", err.Error())
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOk   bool
	}{
		{"ExitError returns code", NewExitError(42), 42, true},
		{"wrapped ExitError", fmt.Errorf("strict: %w", NewExitError(2)), 2, true},
		{"standard error", errors.New("standard error"), 0, false},
		{"nil error", nil, 0, false},
		{"structured Error", New(ErrRender, "test", ""), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := GetExitCode(tt.err)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
