package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/mit/internal/constants"
	"github.com/mrz1836/mit/internal/logging"
	"github.com/mrz1836/mit/internal/period"
	"github.com/mrz1836/mit/internal/todotxt"
)

// taskResult is the JSON form of a mutated line.
type taskResult struct {
	ID     int            `json:"id"`
	Period *period.Period `json:"period,omitempty"`
	Line   string         `json:"line"`
}

// runCreate appends a new MIT due p.
func (s *session) runCreate(cmd *cobra.Command, p period.Period, text string) error {
	ctx := cmd.Context()

	store, err := s.openStore(ctx)
	if err != nil {
		return err
	}

	created := ""
	if s.cfg.Todo.DateOnAdd {
		created = s.today().Format(constants.CreatedDateLayout)
	}

	id, err := todotxt.NewAnnotator(store).Add(text, p, created)
	if err != nil {
		return err
	}
	if err := s.save(ctx, store); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().
		Int("id", id).
		Stringer("period", p).
		Str("text", logging.TaskText(text)).
		Msg("mit added")

	line, err := store.Get(id)
	if err != nil {
		return err
	}
	return s.reportTask(cmd, taskResult{ID: id, Period: &p, Line: line}, fmt.Sprintf("Added MIT %d for %s", id, p))
}

// reportTask prints the outcome of a mutation.
func (s *session) reportTask(cmd *cobra.Command, res taskResult, msg string) error {
	out := s.output(cmd)
	if s.flags.Output == OutputJSON {
		return out.JSON(res)
	}
	out.Success(msg)
	return nil
}
