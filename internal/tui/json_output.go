package tui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// JSONOutput writes one JSON object per message.
type JSONOutput struct {
	encoder *json.Encoder
}

// NewJSONOutput creates a JSONOutput.
func NewJSONOutput(w io.Writer) *JSONOutput {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONOutput{encoder: enc}
}

type jsonMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type jsonError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Success outputs {"type": "success", "message": ...}.
func (o *JSONOutput) Success(msg string) {
	o.message("success", msg)
}

// Error outputs {"type": "error", ...} with details and suggestion when the
// error is an ActionableError.
func (o *JSONOutput) Error(err error) {
	out := jsonError{Type: "error", Message: err.Error()}

	var ae *ActionableError
	if errors.As(err, &ae) {
		out.Message = ae.Message
		out.Details = ae.Context
		out.Suggestion = ae.Suggestion
	}

	//nolint:errchkjson // Error has no error return
	_ = o.encoder.Encode(out)
}

// Warning outputs {"type": "warning", "message": ...}.
func (o *JSONOutput) Warning(msg string) {
	o.message("warning", msg)
}

// Info outputs {"type": "info", "message": ...}.
func (o *JSONOutput) Info(msg string) {
	o.message("info", msg)
}

// JSON encodes v.
func (o *JSONOutput) JSON(v any) error {
	if err := o.encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func (o *JSONOutput) message(kind, msg string) {
	//nolint:errchkjson // callers have no error return
	_ = o.encoder.Encode(jsonMessage{Type: kind, Message: msg})
}
