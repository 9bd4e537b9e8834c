package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fake credentials are built by concatenation so scanners do not flag them.
func fakeOpenAIKey() string { return "sk-" + "TESTONLYxxxxxxxxxxxxxxxxxxxx1234" }
func fakeGitHubPAT() string { return "ghp_" + "xxxxxxxxxxTESTONLYxxxxxxxxxx" }
func fakeAWSKey() string    { return "AKIA" + "TESTONLY12345678" }

func TestRedact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		leak  string
	}{
		{"openai key", "{2016.11.13} rotate " + fakeOpenAIKey(), fakeOpenAIKey()},
		{"github token", "revoke " + fakeGitHubPAT() + " today", fakeGitHubPAT()},
		{"aws key", "aws " + fakeAWSKey(), fakeAWSKey()},
		{"password", "wifi password=hunter22", "hunter22"},
		{"pin", "bank pin: 4321", "4321"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, ContainsSensitiveData(tc.input))
			got := Redact(tc.input)
			assert.NotContains(t, got, tc.leak)
			assert.Contains(t, got, RedactedValue)
		})
	}
}

func TestRedact_LeavesOrdinaryTasksAlone(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"(A) {2016.11.13} call mom @phone",
		"2016-11-01 {2016.Q4.00} finish quarterly report +work",
		"review token bucket design",
	} {
		assert.False(t, ContainsSensitiveData(s), s)
		assert.Equal(t, s, Redact(s))
	}
}

func TestTaskText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "call mom", TaskText("call mom"))

	long := strings.Repeat("é", maxTaskTextLen+10)
	got := TaskText(long)
	assert.Equal(t, maxTaskTextLen+1, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))

	assert.NotContains(t, TaskText("key "+fakeOpenAIKey()), fakeOpenAIKey())
}

func TestSensitiveDataHook(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Hook(NewSensitiveDataHook())

	logger.Info().Msg("plain message")
	assert.NotContains(t, buf.String(), "contains_filtered_data")

	buf.Reset()
	logger.Info().Msg("token=" + strings.Repeat("a", 20))
	assert.Contains(t, buf.String(), `"contains_filtered_data":true`)
}

func TestFilteringWriter_WithZerolog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(NewFilteringWriter(&buf))
	logger.Debug().Str("task", "{2016.11.13} use "+fakeGitHubPAT()).Int("line", 3).Msg("marker written")

	out := buf.String()
	assert.NotContains(t, out, fakeGitHubPAT())
	assert.Contains(t, out, RedactedValue)
	assert.Contains(t, out, `"line":3`)
}

func TestFilteringWriter_PreservesWriteLength(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	input := []byte("password=hunter22\n")
	n, err := NewFilteringWriter(&buf).Write(input)
	require.NoError(t, err)
	assert.Equal(t, len(input), n)
}

func TestIsSensitiveKey(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSensitiveKey("GITHUB_TOKEN"))
	assert.True(t, IsSensitiveKey("db_password"))
	assert.False(t, IsSensitiveKey("todo.file"))
}

func TestOpenFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "mit.log")
	w, err := OpenFile(path, Rotation{MaxSizeMB: 1, MaxBackups: 1, MaxAge: 36 * time.Hour})
	require.NoError(t, err)

	_, err = w.Write([]byte("secret=" + "abcdefgh\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, RedactedValue+"\n", string(data))
}

func TestRotation_Days(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Rotation{}.days())
	assert.Equal(t, 1, Rotation{MaxAge: time.Hour}.days())
	assert.Equal(t, 2, Rotation{MaxAge: 36 * time.Hour}.days())
	assert.Equal(t, 28, Rotation{MaxAge: 28 * 24 * time.Hour}.days())
}
