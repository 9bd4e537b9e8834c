package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation configures the rotating log file.
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAge     time.Duration
	Compress   bool
}

const hoursPerDay = 24

// days converts MaxAge to lumberjack's whole days, rounding up.
func (r Rotation) days() int {
	day := hoursPerDay * time.Hour
	return int((r.MaxAge + day - 1) / day)
}

type filteringWriteCloser struct {
	*FilteringWriter
	io.Closer
}

// OpenFile opens a rotating log file at path, creating its directory. Every
// write is redacted before it reaches disk.
func OpenFile(path string, r Rotation) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    r.MaxSizeMB,
		MaxBackups: r.MaxBackups,
		MaxAge:     r.days(),
		Compress:   r.Compress,
	}
	return filteringWriteCloser{FilteringWriter: NewFilteringWriter(lj), Closer: lj}, nil
}
