package fetcher

import (
	"context"
)

//go:generate mockery --name Source
type Source interface {
	// Key returns the source key used in requests, cache keys and events.
	Key() string

	// Platform returns the display name used as the response discriminator.
	Platform() string

	// Fetch retrieves up to count raw reviews for the given identifier.
	// Failures are always a *Error carrying one of the Kind values; the
	// caller decides how to degrade.
	Fetch(ctx context.Context, identifier string, count int) (Output, error)
}
