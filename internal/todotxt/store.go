// Package todotxt reads and annotates lines of a todo.txt task list.
//
// Lines are addressed by their 1-based position in the file. Positions are not
// stable identities: removing or reordering lines shifts every line after the
// edit, so callers resolve ids again after any structural change.
//
// A line has the shape
//
//	[(A) ][YYYY-MM-DD ][{PERIOD} ]body
//
// where PERIOD is the canonical text of a period.Period. The marker turns an
// ordinary task into an MIT.
package todotxt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mrz1836/mit/internal/errors"
)

// Store is a line-addressable task list.
type Store interface {
	// Len returns the number of lines.
	Len() int
	// Get returns the text of line id (1-based).
	Get(id int) (string, error)
	// Set replaces the text of line id.
	Set(id int, text string) error
	// Append adds a line at the end and returns its id.
	Append(text string) (int, error)
}

// MemStore is an in-memory Store.
type MemStore struct {
	lines []string
}

// NewMemStore returns a MemStore holding a copy of lines.
func NewMemStore(lines ...string) *MemStore {
	return &MemStore{lines: append([]string(nil), lines...)}
}

// Len returns the number of lines.
func (m *MemStore) Len() int {
	return len(m.lines)
}

// Get returns the text of line id.
func (m *MemStore) Get(id int) (string, error) {
	if err := m.check(id); err != nil {
		return "", err
	}
	return m.lines[id-1], nil
}

// Set replaces the text of line id.
func (m *MemStore) Set(id int, text string) error {
	if err := m.check(id); err != nil {
		return err
	}
	m.lines[id-1] = singleLine(text)
	return nil
}

// Append adds a line at the end and returns its id.
func (m *MemStore) Append(text string) (int, error) {
	m.lines = append(m.lines, singleLine(text))
	return len(m.lines), nil
}

// Lines returns a copy of all lines.
func (m *MemStore) Lines() []string {
	return append([]string(nil), m.lines...)
}

func (m *MemStore) check(id int) error {
	if id < 1 || id > len(m.lines) {
		return fmt.Errorf("%w: %d (todo file has %d lines)", errors.ErrInvalidTaskID, id, len(m.lines))
	}
	return nil
}

// singleLine keeps a stored value from splitting into several lines.
func singleLine(text string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(text)
}

// ParseID converts a user supplied task id. Non-numeric and non-positive
// values fail with ErrInvalidTaskID; range checks happen in the Store.
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidTaskID, s)
	}
	return id, nil
}

// Tasks parses every line of s into a Task.
func Tasks(s Store) ([]Task, error) {
	tasks := make([]Task, 0, s.Len())
	for id := 1; id <= s.Len(); id++ {
		line, err := s.Get(id)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, ParseTask(id, line))
	}
	return tasks, nil
}
