package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/mit/internal/errors"
)

func TestNewOutput(t *testing.T) {
	var buf bytes.Buffer
	assert.IsType(t, &JSONOutput{}, NewOutput(&buf, FormatJSON))
	assert.IsType(t, &TTYOutput{}, NewOutput(&buf, FormatText))
	assert.IsType(t, &TTYOutput{}, NewOutput(&buf, ""))
}

func TestTTYOutput_Lines(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := NewTTYOutput(&buf)
	out.Success("added")
	out.Warning("careful")
	out.Info("No MITs found.")

	assert.Equal(t, "✓ added\n⚠ careful\nNo MITs found.\n", buf.String())
}

func TestTTYOutput_ErrorWithSuggestion(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := NewTTYOutput(&buf)
	out.Error(FromError(fmt.Errorf("%w: %q", errors.ErrInvalidDate, "someday")))

	output := buf.String()
	assert.Contains(t, output, "✗ The date could not be understood.")
	assert.Contains(t, output, `invalid date: "someday"`)
	assert.Contains(t, output, "▸ Try: Use today, tomorrow")
}

func TestJSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	out := NewJSONOutput(&buf)
	out.Info("No MITs found.")

	var msg map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &msg))
	assert.Equal(t, map[string]string{"type": "info", "message": "No MITs found."}, msg)
}

func TestJSONOutput_Error(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewJSONOutput(&buf).Error(FromError(fmt.Errorf("%w: 42", errors.ErrInvalidTaskID)))

	var msg map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &msg))
	assert.Equal(t, "error", msg["type"])
	assert.Equal(t, "The task id does not refer to a line in the todo file.", msg["message"])
	assert.Equal(t, "invalid task id: 42", msg["details"])
	assert.NotEmpty(t, msg["suggestion"])
}

func TestFromError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: line 3", errors.ErrNotMIT)
	ae := FromError(wrapped)

	assert.Equal(t, "That task is not an MIT.", ae.Message)
	assert.Equal(t, "task is not an MIT: line 3", ae.Context)
	require.ErrorIs(t, ae, errors.ErrNotMIT)

	plain := FromError(assertError("disk full"))
	assert.Equal(t, "disk full", plain.Error())
	assert.Empty(t, plain.Suggestion)
}

type assertError string

func (e assertError) Error() string { return string(e) }

func TestHasColorSupport(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.False(t, HasColorSupport())
}

func TestHasColorSupport_DumbTerminal(t *testing.T) {
	t.Setenv("TERM", "dumb")
	assert.False(t, HasColorSupport())
}
