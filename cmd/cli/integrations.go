package cli

import (
	"encoding/json"
	"fmt"

	"github.com/flowbaker/infomaniak/internal/config"
	"github.com/flowbaker/infomaniak/internal/initialization"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func NewIntegrationsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "integrations",
		Short: "Print every integration schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			// schemas need no credentials, so a placeholder keeps the container happy
			deps, err := initialization.BuildExecutorDependencies(initialization.ExecutorDependencyConfig{
				Config: &config.Config{
					Credentials: map[string]config.CredentialConfig{config.DefaultCredentialID: {APIToken: "unused"}},
				},
			})
			if err != nil {
				return err
			}

			schemas := deps.ExecutorService.Integrations(cmd.Context())

			switch format {
			case "yaml":
				encoder := yaml.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent(2)
				defer encoder.Close()

				return encoder.Encode(schemas)
			case "json":
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")

				return encoder.Encode(schemas)
			default:
				return fmt.Errorf("unknown format %q, expected yaml or json", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or json")

	return cmd
}
