package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-scaffold/pkg/metaapi"
)

func newServeCommand(opts *globalOptions) *cobra.Command {
	var (
		addr    string
		release bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the resolved metadata over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			registry, err := s.builder.Registry(cmd.Context(), s.source)
			if err != nil {
				return err
			}
			if release {
				gin.SetMode(gin.ReleaseMode)
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           metaapi.New(registry, metaapi.WithLogger(s.logger)).Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			errCh := make(chan error, 1)
			go func() {
				s.logger.Info().Str("addr", addr).Strs("models", registry.Names()).Msg("serving metadata")
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				s.logger.Info().Msg("shutting down")
				return server.Shutdown(ctx)
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&release, "release", false, "run gin in release mode")
	return cmd
}
