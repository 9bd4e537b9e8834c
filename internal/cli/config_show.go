package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// AddConfigCommand adds the config command group.
func AddConfigCommand(root *cobra.Command, s *session) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect mit configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after merging defaults, ~/.mit/config.yaml,
.mit/config.yaml, MIT_* environment variables and flags. YAML by default,
JSON with --output json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if s.flags.Output == OutputJSON {
				return s.output(cmd).JSON(s.cfg)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(s.cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	})

	root.AddCommand(cmd)
}
