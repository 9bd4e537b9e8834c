package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/mit/internal/errors"
	"github.com/mrz1836/mit/internal/todotxt"
)

// AddMoveCommand adds the mv subcommand.
func AddMoveCommand(root *cobra.Command, s *session) {
	cmd := &cobra.Command{
		Use:   "mv ID DATE",
		Short: "Move task ID to DATE",
		Long: `Move task ID (its line number in the todo file) to DATE. A plain task
becomes an MIT.

Examples:
  mit mv 3 tomorrow
  mit mv 12 q2
  mit mv 7 2017.03`,
		Aliases: []string{"move"},
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runMove(cmd, args[0], args[1])
		},
	}
	root.AddCommand(cmd)
}

// runMove validates both arguments before the todo file is read.
func (s *session) runMove(cmd *cobra.Command, idArg, token string) error {
	ctx := cmd.Context()

	id, err := todotxt.ParseID(idArg)
	if err != nil {
		return errors.NewExitCode2Error(err)
	}
	p, err := s.normalize(token)
	if err != nil {
		return err
	}

	store, err := s.openStore(ctx)
	if err != nil {
		return err
	}

	before, err := store.Get(id)
	if err != nil {
		return errors.NewExitCode2Error(err)
	}
	prev, wasMIT := todotxt.ReadMarker(before)

	if err := todotxt.NewAnnotator(store).WriteMarker(id, p); err != nil {
		return err
	}
	if err := s.save(ctx, store); err != nil {
		return err
	}

	event := zerolog.Ctx(ctx).Debug().Int("id", id).Stringer("period", p)
	if wasMIT {
		event = event.Stringer("previous", prev)
	}
	event.Msg("mit moved")

	line, err := store.Get(id)
	if err != nil {
		return err
	}
	if err := s.reportTask(cmd, taskResult{ID: id, Period: &p, Line: line}, fmt.Sprintf("Moved task %d to %s", id, p)); err != nil {
		return err
	}
	if todotxt.ParseTask(id, before).Done {
		s.warn(cmd, fmt.Sprintf("Task %d is completed and stays hidden from lists", id))
	}
	return nil
}
