package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/mit/internal/errors"
	"github.com/mrz1836/mit/internal/todotxt"
)

// AddRemoveCommand adds the rm subcommand.
func AddRemoveCommand(root *cobra.Command, s *session) {
	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Turn MIT ID back into a plain task",
		Long: `Remove the period marker from task ID. The task itself stays in the
todo file.

Examples:
  mit rm 3`,
		Aliases: []string{"remove"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runRemove(cmd, args[0])
		},
	}
	root.AddCommand(cmd)
}

func (s *session) runRemove(cmd *cobra.Command, idArg string) error {
	ctx := cmd.Context()

	id, err := todotxt.ParseID(idArg)
	if err != nil {
		return errors.NewExitCode2Error(err)
	}

	store, err := s.openStore(ctx)
	if err != nil {
		return err
	}
	if err := todotxt.NewAnnotator(store).ClearMarker(id); err != nil {
		return err
	}
	if err := s.save(ctx, store); err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().Int("id", id).Msg("mit removed")

	line, err := store.Get(id)
	if err != nil {
		return err
	}
	return s.reportTask(cmd, taskResult{ID: id, Line: line}, fmt.Sprintf("Task %d is no longer an MIT", id))
}
