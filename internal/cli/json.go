package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// machineMode is set by the global --machine flag. When enabled, all
// command output is emitted as JSON envelopes on stdout regardless of
// per-command --json flags.
var machineMode bool

// MachineMode reports whether machine-readable output was requested.
func MachineMode() bool {
	return machineMode
}

// JSONEnvelope is the uniform wrapper for machine-readable output.
// Exactly one of Data or Error is populated.
type JSONEnvelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *JSONError `json:"error,omitempty"`
}

// JSONError carries a machine-readable failure.
type JSONError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Details    any    `json:"details,omitempty"`
}

// WriteJSONSuccess writes a success envelope wrapping data.
func WriteJSONSuccess(w io.Writer, data any) error {
	return writeJSONEnvelope(w, JSONEnvelope{Success: true, Data: data})
}

// WriteJSONError writes a failure envelope.
func WriteJSONError(w io.Writer, jerr *JSONError) error {
	return writeJSONEnvelope(w, JSONEnvelope{Success: false, Error: jerr})
}

// WriteJSONFromError converts err and writes a failure envelope.
func WriteJSONFromError(w io.Writer, err error) error {
	return WriteJSONError(w, ErrorToJSON(err))
}

func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts an error into its JSON representation. Typed
// errors keep their code and suggestion; anything else is reported as
// an internal error.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}
	var serr *errors.Error
	if stderrors.As(err, &serr) {
		jerr := &JSONError{
			Code:       serr.Code,
			Message:    serr.Message,
			Suggestion: serr.Suggestion,
		}
		if serr.Cause != nil {
			jerr.Details = serr.Cause.Error()
		}
		return jerr
	}
	return &JSONError{
		Code:    errors.ErrInternal,
		Message: err.Error(),
	}
}
