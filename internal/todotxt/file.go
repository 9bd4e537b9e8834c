package todotxt

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrz1836/mit/internal/ctxutil"
	"github.com/mrz1836/mit/internal/errors"
)

const (
	// filePerm is the permission for a newly created todo file.
	filePerm = 0o644
	// maxLineSize bounds a single todo line when scanning.
	maxLineSize = 1024 * 1024
)

// FileStore is a Store backed by a todo.txt file. The file is read once by
// OpenFile and written back by Save. It takes no locks; concurrent writers to
// the same file produce undefined results.
type FileStore struct {
	MemStore

	path  string
	dirty bool
}

// OpenFile loads the todo file at path. A missing file is treated as empty
// and created by the first Save, but its directory must exist.
func OpenFile(ctx context.Context, path string) (*FileStore, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	fs := &FileStore{path: path}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "failed to read todo file")
		}
		if _, statErr := os.Stat(filepath.Dir(path)); statErr != nil {
			return nil, fmt.Errorf("%w: %s", errors.ErrTodoFileNotFound, path)
		}
		return fs, nil
	}

	lines, err := splitLines(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse todo file")
	}
	fs.lines = lines
	return fs, nil
}

// Path returns the file the store reads and writes.
func (f *FileStore) Path() string {
	return f.path
}

// Set replaces the text of line id and marks the store dirty.
func (f *FileStore) Set(id int, text string) error {
	if err := f.MemStore.Set(id, text); err != nil {
		return err
	}
	f.dirty = true
	return nil
}

// Append adds a line and marks the store dirty.
func (f *FileStore) Append(text string) (int, error) {
	id, err := f.MemStore.Append(text)
	if err != nil {
		return 0, err
	}
	f.dirty = true
	return id, nil
}

// Dirty reports whether there are unsaved changes.
func (f *FileStore) Dirty() bool {
	return f.dirty
}

// Save writes the lines back if anything changed. The new content goes to a
// temporary file next to the real file which then replaces it. When the
// path is a symlink the link is kept and its target is replaced.
func (f *FileStore) Save(ctx context.Context) error {
	if !f.dirty {
		return nil
	}
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, line := range f.lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	target := resolvePath(f.path)
	perm := os.FileMode(filePerm)
	if info, err := os.Stat(target); err == nil {
		perm = info.Mode().Perm()
	}

	if err := writeReplace(target, buf.Bytes(), perm); err != nil {
		return errors.Wrap(err, "failed to write todo file")
	}
	f.dirty = false
	return nil
}

// resolvePath follows symlinks in path. A dangling link resolves to the file
// it names so the first save creates that file.
func resolvePath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	target, err := os.Readlink(path)
	if err != nil {
		return path
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return target
}

// writeReplace writes data to a sibling temp file and renames it over path.
func writeReplace(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	writeErr := func() error {
		if _, err := tmp.Write(data); err != nil {
			return err
		}
		if err := tmp.Chmod(perm); err != nil {
			return err
		}
		return tmp.Sync()
	}()

	closeErr := tmp.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		_ = os.Remove(tmpName)
		return writeErr
	}
	return os.Rename(tmpName, path)
}

// splitLines breaks file content into lines, dropping line terminators.
// A trailing newline does not produce an extra empty line.
func splitLines(data []byte) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}
