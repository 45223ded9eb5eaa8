package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/flowbaker/infomaniak/internal/server"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewServeCommand(opts *rootOptions) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the executor HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, address)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Listen address (overrides HTTP_ADDRESS)")

	return cmd
}

func runServe(opts *rootOptions, address string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, deps, err := opts.buildDependencies()
	if err != nil {
		return err
	}

	if address == "" {
		address = cfg.HTTPAddress
	}

	app := server.NewHTTPServer(server.HTTPServerDependencies{
		ExecutorController: deps.ExecutorController,
		MetricsHandler:     deps.Metrics.Handler(),
		APIKey:             cfg.ServerAPIKey,
	})

	log.Info().
		Str("address", address).
		Str("api_base_url", cfg.APIBaseURL).
		Int("credentials", len(cfg.Credentials)).
		Bool("api_key_required", cfg.ServerAPIKey != "").
		Msg("Starting executor service")

	if err := app.Listen(address, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
	}); err != nil {
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}

	log.Info().Msg("Executor service stopped")
	return nil
}
