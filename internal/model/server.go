package model

import (
	"context"
	"net"
)

// SecurityLayer opens the listener the API is served on (plain TCP or TLS).
type SecurityLayer interface {
	Listen(network, addr string) (net.Listener, error)
}

// Server is a long-running network server with graceful shutdown.
// Start blocks until the server stops; a graceful Stop makes Start return nil.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
