package cli

import (
	"fmt"

	"github.com/flowbaker/infomaniak/internal/config"
	"github.com/flowbaker/infomaniak/internal/executor"
	"github.com/flowbaker/infomaniak/pkg/domain"

	"github.com/spf13/cobra"
)

func NewTestConnectionCommand(opts *rootOptions) *cobra.Command {
	var integrationType, credentialID string

	cmd := &cobra.Command{
		Use:   "test-connection",
		Short: "Check that a credential can reach the Infomaniak API",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, deps, err := opts.buildDependencies()
			if err != nil {
				return err
			}

			ok, err := deps.ExecutorService.TestConnection(cmd.Context(), executor.TestConnectionParams{
				IntegrationType: domain.IntegrationType(integrationType),
				CredentialID:    credentialID,
			})
			if err != nil {
				return fmt.Errorf("connection test failed: %w", err)
			}

			if !ok {
				return fmt.Errorf("connection test failed for credential %q", credentialID)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Credential %q can reach the Infomaniak API\n", credentialID)
			return nil
		},
	}

	cmd.Flags().StringVar(&integrationType, "integration", string(domain.IntegrationType_InfomaniakCore), "Integration type")
	cmd.Flags().StringVar(&credentialID, "credential", config.DefaultCredentialID, "Credential ID")

	return cmd
}
