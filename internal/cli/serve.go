package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	apperr "github.com/DanishNasarudin/wvpac-pathfinder/internal/errors"
	"github.com/DanishNasarudin/wvpac-pathfinder/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var snapshot, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve routes over HTTP",
		Long: `Serve loads a snapshot once and answers read-only routing requests:

  GET /healthz
  GET /route?from=<room>&to=<room>[&floor=<floor>][&format=geojson]
  GET /route/points?from=<point>&to=<point>[&floor=<floor>]
  GET /floors/{floor}/nearest?x=<x>&y=<y>[&k=<n>]`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			snap, err := loadSnapshot(snapshot)
			if err != nil {
				return err
			}
			r, err := c.newRouter(logger)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = c.config.Server.Addr
			}

			err = server.New(snap, r, logger).ListenAndServe(ctx, addr)
			if errors.Is(err, context.Canceled) {
				logger.Info("server stopped")
				return nil
			}
			if err != nil {
				return apperr.Wrap(apperr.ErrCodeInternal, err, "serve %s", addr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshot, "snapshot", "", "venue snapshot file (.json or .toml)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else :8080)")
	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}
