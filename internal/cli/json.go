package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"strings"

	"github.com/rileyhilliard/nodeboard/internal/errors"
)

// Machine mode flag - when true, outputs JSON and suppresses human-friendly decorations
var machineMode bool

// MachineMode returns true if machine-readable output is enabled
func MachineMode() bool {
	return machineMode
}

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigNotFound    = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid     = "CONFIG_INVALID"
	ErrCodeSnapshotNotFound  = "SNAPSHOT_NOT_FOUND"
	ErrCodeSnapshotInvalid   = "SNAPSHOT_INVALID"
	ErrCodeNodeNotFound      = "NODE_NOT_FOUND"
	ErrCodeRenderFailed      = "RENDER_FAILED"
	ErrCodeLocaleUnsupported = "LOCALE_UNSUPPORTED"
	ErrCodeUnknown           = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	env := JSONEnvelope{
		Success: true,
		Data:    data,
	}
	return writeJSONEnvelope(w, env)
}

// WriteJSONError writes an error response to the writer.
func WriteJSONError(w io.Writer, code, message, suggestion string, details interface{}) error {
	env := JSONEnvelope{
		Success: false,
		Error: &JSONError{
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
			Details:    details,
		},
	}
	return writeJSONEnvelope(w, env)
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	env := JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	}
	return writeJSONEnvelope(w, env)
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	var nbErr *errors.Error
	if stderrors.As(err, &nbErr) {
		return &JSONError{
			Code:       mapErrorCode(nbErr.Code, nbErr.Message),
			Message:    nbErr.Message,
			Suggestion: nbErr.Suggestion,
		}
	}

	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(internalCode, message string) string {
	notFound := isNotFoundMessage(message)

	switch internalCode {
	case errors.ErrConfig:
		if notFound {
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.ErrSnapshot:
		if strings.Contains(strings.ToLower(message), "no node") {
			return ErrCodeNodeNotFound
		}
		if notFound {
			return ErrCodeSnapshotNotFound
		}
		return ErrCodeSnapshotInvalid
	case errors.ErrRender:
		return ErrCodeRenderFailed
	case errors.ErrLocale:
		return ErrCodeLocaleUnsupported
	}

	return ErrCodeUnknown
}

func isNotFoundMessage(message string) bool {
	msgLower := strings.ToLower(message)
	return strings.Contains(msgLower, "not found") || strings.Contains(msgLower, "couldn't find")
}
