package cli

import (
	"fmt"
	"os"

	"github.com/flowbaker/infomaniak/internal/config"
	"github.com/flowbaker/infomaniak/internal/initialization"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	debug      bool
	configFile string
	envFile    string
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "infomaniak",
		Short: "Infomaniak integration executor",
		Long: `Runs Infomaniak API actions (core, DNS, email, public cloud and streaming video)
from the command line or behind an HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to infomaniak.yaml")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Path to a .env file (default .env)")

	rootCmd.AddCommand(NewServeCommand(opts))
	rootCmd.AddCommand(NewRunCommand(opts))
	rootCmd.AddCommand(NewTestConnectionCommand(opts))
	rootCmd.AddCommand(NewIntegrationsCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

func (o *rootOptions) buildDependencies() (*config.Config, *initialization.ExecutorDependencies, error) {
	cfg, err := config.LoadConfig(config.LoadOptions{
		ConfigFile: o.configFile,
		EnvFile:    o.envFile,
	})
	if err != nil {
		return nil, nil, err
	}

	deps, err := initialization.BuildExecutorDependencies(initialization.ExecutorDependencyConfig{
		Config: cfg,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build executor dependencies: %w", err)
	}

	return cfg, deps, nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
