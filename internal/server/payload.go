package server

import (
	"encoding/json"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// renderPayload marshals an operation result as two-space indented JSON,
// the body format every tool call returns.
func renderPayload(payload any) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrInternal,
			"Encoding operation result failed", "")
	}
	return string(data), nil
}

// floatDefault converts a registry default into the JSON number space.
func floatDefault(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
