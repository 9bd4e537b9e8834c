package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/mit/internal/errors"
	"github.com/mrz1836/mit/internal/mit"
	"github.com/mrz1836/mit/internal/period"
)

// routeKind is what a bare mit invocation asks for.
type routeKind int

const (
	routeList routeKind = iota
	routeCreate
	routeQuickList
)

// route is the parsed meaning of the root command's arguments.
type route struct {
	kind   routeKind
	filter *mit.ContextFilter
	token  string
	text   string
}

// parseRoute decides what the root arguments mean:
//
//	(none) | @ctx | not @ctx     list
//	DATE [@ctx | not @ctx]       quick-list of DATE
//	DATE @ctx more words         quick-list of DATE filtered by @ctx
//	DATE text...                 create
func parseRoute(args []string) route {
	if len(args) == 0 {
		return route{kind: routeList}
	}
	if filter, ok := mit.ParseContextFilter(args); ok {
		return route{kind: routeList, filter: filter}
	}

	r := route{token: args[0], text: strings.TrimSpace(strings.Join(args[1:], " "))}
	switch {
	case r.text == "":
		r.kind = routeQuickList
	case strings.HasPrefix(r.text, "@"):
		r.kind = routeQuickList
		if filter, ok := mit.ParseContextFilter(args[1:]); ok {
			r.filter = filter
		} else {
			r.filter = &mit.ContextFilter{Context: strings.Fields(r.text)[0]}
		}
	default:
		if filter, ok := mit.ParseContextFilter(args[1:]); ok {
			r.kind = routeQuickList
			r.filter = filter
		} else {
			r.kind = routeCreate
		}
	}
	return r
}

// dispatch runs the root command.
func (s *session) dispatch(cmd *cobra.Command, args []string) error {
	r := parseRoute(args)
	if r.kind == routeList {
		return s.runList(cmd, listRequest{filter: r.filter, days: s.cfg.List.Days})
	}

	p, err := s.normalize(r.token)
	if err != nil {
		return err
	}
	if r.kind == routeQuickList {
		return s.runList(cmd, listRequest{filter: r.filter, only: &p})
	}
	return s.runCreate(cmd, p, r.text)
}

// normalize parses a date token against today. Failures are user input
// errors.
func (s *session) normalize(token string) (period.Period, error) {
	p, err := period.Normalize(token, s.today())
	if err != nil {
		return period.Period{}, errors.NewExitCode2Error(err)
	}
	return p, nil
}

// invalidArgument reports a malformed command line.
func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errors.ErrInvalidArgument}, args...)...)
}
