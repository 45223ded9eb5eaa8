package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/flowbaker/infomaniak/internal/config"
	"github.com/flowbaker/infomaniak/internal/executor"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewRunCommand(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one action described in a YAML step file",
		Example: `  infomaniak run --file step.yaml

  # step.yaml
  integration: infomaniak_dns
  action: list_records
  settings:
    zone: example.ch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStep(cmd, opts, file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Step file, - for stdin")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runStep(cmd *cobra.Command, opts *rootOptions, file string) error {
	in := cmd.InOrStdin()
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("failed to open step file: %w", err)
		}
		defer f.Close()
		in = f
	}

	step, err := executor.ParseStep(in)
	if err != nil {
		return err
	}

	_, deps, err := opts.buildDependencies()
	if err != nil {
		return err
	}

	result, err := deps.ExecutorService.Execute(cmd.Context(), step.ExecuteParams(config.DefaultCredentialID))
	if err != nil {
		log.Error().Err(err).Str("execution_id", result.ExecutionID).Msg("Step failed")
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	return encoder.Encode(result.Items)
}
