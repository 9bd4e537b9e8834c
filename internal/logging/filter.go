// Package logging keeps credentials out of mit's logs.
//
// Task text is user content and sometimes carries pasted secrets, so anything
// headed for the log file passes through a FilteringWriter, and call sites
// that log task text use TaskText.
package logging

import (
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedValue replaces sensitive data.
const RedactedValue = "[REDACTED]"

// maxTaskTextLen bounds task text written to logs.
const maxTaskTextLen = 120

//nolint:gochecknoglobals // compiled once
var sensitivePatterns = []*regexp.Regexp{
	// Provider API keys
	regexp.MustCompile(`sk-ant-api[a-zA-Z0-9_-]+`),
	regexp.MustCompile(`sk-[a-zA-Z0-9]{20,}`),

	// GitHub tokens
	regexp.MustCompile(`gh[pousr]_[a-zA-Z0-9]{20,}`),

	// AWS access key ids
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),

	regexp.MustCompile(`(?i)(api[_-]?key|apikey)\s*[:=]\s*["']?([a-zA-Z0-9_-]{16,})["']?`),
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9_.-]{20,}`),
	regexp.MustCompile(`(?i)(secret|password|passwd|pwd|pin)\s*[:=]\s*["']?[^\s"']{4,}["']?`),
	regexp.MustCompile(`(?i)(token|auth)\s*[:=]\s*["']?[a-zA-Z0-9+/=_-]{16,}["']?`),
}

// ContainsSensitiveData reports whether s matches any sensitive pattern.
func ContainsSensitiveData(s string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// Redact replaces every sensitive match in s with RedactedValue.
func Redact(s string) string {
	for _, pattern := range sensitivePatterns {
		s = pattern.ReplaceAllString(s, RedactedValue)
	}
	return s
}

// TaskText prepares a todo line for a log field: redacted and truncated.
func TaskText(line string) string {
	line = Redact(line)
	if r := []rune(line); len(r) > maxTaskTextLen {
		return string(r[:maxTaskTextLen]) + "…"
	}
	return line
}

// SensitiveDataHook flags events whose message looks like it holds a secret.
// zerolog hooks cannot rewrite the message, so the flag tells readers the
// file copy was filtered.
type SensitiveDataHook struct{}

// NewSensitiveDataHook creates a SensitiveDataHook.
func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements zerolog.Hook.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// FilteringWriter redacts sensitive data before it reaches w.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter wraps w.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write redacts p and writes it. It reports len(p) on success so callers do
// not see a short write when redaction changed the length.
func (fw *FilteringWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(fw.w, Redact(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// IsSensitiveKey reports whether a config or field name suggests a secret.
func IsSensitiveKey(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range []string{"password", "secret", "token", "api_key", "apikey", "credential"} {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}
