package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	httpadapter "github.com/satriahrh/buyer-hash/adapters/http"
	"github.com/satriahrh/buyer-hash/config"
	"github.com/satriahrh/buyer-hash/utils/log"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the hashing HTTP API",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlag(v, config.HTTPAddrKey, cmd.Flags(), "addr")
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, svc, err := newService(v)
			if err != nil {
				return err
			}

			handler := httpadapter.NewHashHandler(svc, httpadapter.Options{
				JWTSecret:     cfg.JWTSecret,
				JWTExpiry:     cfg.JWTExpiry,
				APIKey:        cfg.APIKey,
				APISecret:     cfg.APISecret,
				MaxConcurrent: cfg.MaxConcurrent,
			})
			e := httpadapter.NewServer(handler)

			logger := log.With(zap.String("addr", cfg.HTTPAddr), zap.String("backend", svc.Backend()))
			if cfg.APIKey == "" || cfg.APISecret == "" {
				logger.Warn("⚠️ API_KEY/API_SECRET not set, token issuance disabled")
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("🚀 Starting server",
					zap.Strings("endpoints", []string{
						"GET  /api/v1/health",
						"POST /api/v1/auth/token",
						"POST /api/v1/hash/phone",
						"POST /api/v1/hash/address",
					}))
				errCh <- e.Start(cfg.HTTPAddr)
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
			}

			logger.Info("🔒 Shutting down server")
			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			return e.Shutdown(ctx)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	return cmd
}
