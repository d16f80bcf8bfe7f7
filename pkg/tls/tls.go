package tls

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/spiffe/go-spiffe/v2/spiffetls/tlsconfig"
	"github.com/spiffe/go-spiffe/v2/workloadapi"
	"go.uber.org/zap"

	"github.com/rso-shop/stock-service/pkg/config"
)

// Source wraps the SPIRE workload identity source backing a server TLS
// config. Close releases the workload API connection.
type Source struct {
	x509 *workloadapi.X509Source
}

func (s *Source) Close() {
	if s != nil && s.x509 != nil {
		s.x509.Close()
	}
}

// LoadServerConfig builds an mTLS server configuration from the SPIRE
// workload API. Returns a nil config when TLS is disabled.
func LoadServerConfig(ctx context.Context, cfg config.TLSConfig, logger *zap.Logger) (*tls.Config, *Source, error) {
	if !cfg.Enabled {
		logger.Info("TLS is disabled")
		return nil, nil, nil
	}

	source, err := workloadapi.NewX509Source(
		ctx,
		workloadapi.WithClientOptions(
			workloadapi.WithAddr(cfg.SocketPath),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create X509Source: %w", err)
	}

	tlsConfig := tlsconfig.MTLSServerConfig(source, source, tlsconfig.AuthorizeAny())
	tlsConfig.MinVersion = tls.VersionTLS12

	logger.Info("SPIRE TLS configuration loaded",
		zap.String("socket_path", cfg.SocketPath))

	return tlsConfig, &Source{x509: source}, nil
}
