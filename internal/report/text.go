package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrz1836/mit/internal/tui"
)

// Styles controls how WriteText decorates labels and ids.
type Styles struct {
	PastDue lipgloss.Style
	Current lipgloss.Style
	Future  lipgloss.Style
	ID      lipgloss.Style
}

// DefaultStyles uses the shared terminal palette.
func DefaultStyles() Styles {
	return Styles{
		PastDue: lipgloss.NewStyle().Foreground(tui.ColorError).Bold(true),
		Current: lipgloss.NewStyle().Foreground(tui.ColorPrimary).Bold(true),
		Future:  tui.StyleBold,
		ID:      lipgloss.NewStyle().Foreground(tui.ColorMuted),
	}
}

// PlainStyles renders text without any escape sequences.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{PastDue: plain, Current: plain, Future: plain, ID: plain}
}

func (s Styles) label(k Kind) lipgloss.Style {
	switch k {
	case KindPastDue:
		return s.PastDue
	case KindCurrent:
		return s.Current
	default:
		return s.Future
	}
}

// WriteText prints r as
//
//	Label:
//	  task text (id)
//
// with a blank line between sections.
func WriteText(w io.Writer, r Report, s Styles) error {
	for i, sec := range r.Sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, s.label(sec.Kind).Render(sec.Label+":")); err != nil {
			return err
		}
		for _, it := range sec.Items {
			id := s.ID.Render("(" + strconv.Itoa(it.ID) + ")")
			if _, err := fmt.Fprintf(w, "  %s %s\n", it.Text, id); err != nil {
				return err
			}
		}
	}
	return nil
}
