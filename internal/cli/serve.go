package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve proposals over a read-only HTTP API",
		Long: `Serve the tenant's proposals as JSON until interrupted.

Routes:
  GET /healthz
  GET /v1/proposals?filter=relevant&page=1&page_size=10&q=
  GET /v1/proposals/{id}
  GET /v1/voting_power

Responses are cached for cache_ttl (AGORA_CACHE_TTL, 0 disables caching).`,
		Example: `  agora serve --addr :9090
  AGORA_TENANT=ens agora serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.Server.Run(ctx, "")
		},
	}

	// bound to the addr config key
	cmd.Flags().String("addr", "", "Listen address (defaults to ':8080')")

	return cmd
}
