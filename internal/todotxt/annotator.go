package todotxt

import (
	"fmt"
	"strings"

	"github.com/mrz1836/mit/internal/errors"
	"github.com/mrz1836/mit/internal/period"
)

// Annotator reads and writes period markers on the lines of a Store. Marker
// writes touch exactly one line and never change the line count.
type Annotator struct {
	store Store
}

// NewAnnotator returns an Annotator over store.
func NewAnnotator(store Store) *Annotator {
	return &Annotator{store: store}
}

// ReadMarker returns the period marker on line id.
func (a *Annotator) ReadMarker(id int) (period.Period, bool, error) {
	line, err := a.store.Get(id)
	if err != nil {
		return period.Period{}, false, err
	}
	p, ok := ReadMarker(line)
	return p, ok, nil
}

// WriteMarker sets the marker of line id to p, replacing any existing one.
func (a *Annotator) WriteMarker(id int, p period.Period) error {
	if p.IsZero() {
		return fmt.Errorf("%w: zero period", errors.ErrInvalidDate)
	}
	line, err := a.store.Get(id)
	if err != nil {
		return err
	}
	return a.store.Set(id, WriteMarker(line, p))
}

// ClearMarker removes the marker of line id. Lines without a valid marker
// fail with ErrNotMIT and are left untouched.
func (a *Annotator) ClearMarker(id int) error {
	line, err := a.store.Get(id)
	if err != nil {
		return err
	}
	if _, ok := ReadMarker(line); !ok {
		return fmt.Errorf("%w: line %d", errors.ErrNotMIT, id)
	}
	return a.store.Set(id, ClearMarker(line))
}

// Add appends a new MIT with body text and returns its line id. When created
// is non-empty and text has no creation date, created is written as that
// field, after any priority.
func (a *Annotator) Add(text string, p period.Period, created string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, errors.ErrEmptyTask
	}
	if created != "" {
		m := prefixPattern.FindStringSubmatch(text)
		if m[2] == "" {
			n := 0
			if m[1] != "" {
				n = len("(A) ")
			}
			text = text[:n] + created + " " + text[n:]
		}
	}
	return a.store.Append(WriteMarker(text, p))
}
