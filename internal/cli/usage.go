package cli

import "github.com/spf13/cobra"

// AddUsageCommand adds usage, which prints the root help. It skips the
// persistent setup so it never touches configuration or the todo file.
func AddUsageCommand(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:               "usage",
		Short:             "Show usage",
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(*cobra.Command, []string) error {
			return root.Help()
		},
	})
}
