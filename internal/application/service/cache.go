package service

import "context"

// ViewCache holds rendered public portfolio views keyed by username. The
// payload is an opaque JSON blob owned by the caller.
type ViewCache interface {
	GetView(ctx context.Context, username string) ([]byte, bool, error)
	SetView(ctx context.Context, username string, payload []byte) error
	InvalidateView(ctx context.Context, username string) error
}
