package api

import (
	"context"

	"github.com/vytor/chessroyale/internal/lobby"
	"github.com/vytor/chessroyale/internal/services"
)

// Pinger reports whether the storage endpoint is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	Annotations services.AnnotationService
	Sessions    *lobby.Manager
	// DB is nil when no connection string was configured.
	DB Pinger
	// SecureCookies marks the session cookie Secure (set behind HTTPS).
	SecureCookies bool
}
