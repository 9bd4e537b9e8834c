package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/mit/internal/mit"
	"github.com/mrz1836/mit/internal/period"
	"github.com/mrz1836/mit/internal/report"
	"github.com/mrz1836/mit/internal/todotxt"
)

// noMITsMessage is shown when a list finds nothing.
const noMITsMessage = "No MITs found."

// listRequest selects what runList shows.
type listRequest struct {
	filter *mit.ContextFilter
	// only restricts the report to one period.
	only *period.Period
	days int
}

// AddListCommand adds the list subcommand.
func AddListCommand(root *cobra.Command, s *session) {
	cmd := &cobra.Command{
		Use:   "list [@context | not @context]",
		Short: "List MITs grouped by year, quarter, month and day",
		Long: `List MITs grouped by year, quarter, month and day. This is what a bare
"mit" does. --days hides day entries further out than N days.

Examples:
  mit list
  mit list @work
  mit list not @home --days 7
  mit list --output json`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := listRequest{days: s.cfg.List.Days}
			if len(args) > 0 {
				filter, ok := mit.ParseContextFilter(args)
				if !ok {
					return invalidArgument("expected @context or not @context, got %q", args)
				}
				req.filter = filter
			}
			return s.runList(cmd, req)
		},
	}
	cmd.Flags().Int("days", 0, "hide day entries more than N days out (0 shows all)")
	root.AddCommand(cmd)
}

// runList classifies the todo file and prints the report.
func (s *session) runList(cmd *cobra.Command, req listRequest) error {
	ctx := cmd.Context()

	store, err := s.openStore(ctx)
	if err != nil {
		return err
	}
	tasks, err := todotxt.Tasks(store)
	if err != nil {
		return err
	}

	group := mit.Classify(tasks, req.filter)
	opts := report.Options{Days: req.days}
	if req.only != nil {
		group = group.Only(*req.only)
		opts.Days = 0
	}
	rep := report.Build(group, s.now(), opts)

	log := zerolog.Ctx(ctx).Debug().Int("tasks", len(tasks)).Int("mits", group.Len()).Int("sections", len(rep.Sections))
	if req.filter != nil {
		log = log.Str("context", req.filter.Context).Bool("invert", req.filter.Invert)
	}
	log.Msg("report built")

	out := s.output(cmd)
	if s.flags.Output == OutputJSON {
		return out.JSON(rep)
	}
	if rep.Empty() {
		out.Info(noMITsMessage)
		return nil
	}
	return report.WriteText(cmd.OutOrStdout(), rep, s.reportStyles())
}
