package flight

import (
	"context"
	"time"
)

// Provider returns the flight-summary records for a designator on one
// calendar date, most recent first. Transport or auth failures are returned
// as errors; an empty result is not an error.
type Provider interface {
	Fetch(ctx context.Context, designator string, date time.Time, limit int) ([]Record, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(ctx context.Context, designator string, date time.Time, limit int) ([]Record, error)

func (f ProviderFunc) Fetch(ctx context.Context, designator string, date time.Time, limit int) ([]Record, error) {
	return f(ctx, designator, date, limit)
}
