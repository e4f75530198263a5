package observability

import (
	"context"
	"time"

	"github.com/theoremus-urban-solutions/flight-transfer/flight"
)

type instrumentedProvider struct {
	next flight.Provider
	c    *Collector
}

// InstrumentProvider wraps p so every query is counted and timed.
func InstrumentProvider(p flight.Provider, c *Collector) flight.Provider {
	if c == nil {
		return p
	}
	return &instrumentedProvider{next: p, c: c}
}

func (ip *instrumentedProvider) Fetch(ctx context.Context, designator string, date time.Time, limit int) ([]flight.Record, error) {
	start := time.Now()
	recs, err := ip.next.Fetch(ctx, designator, date, limit)
	ip.c.ProviderDurations.Observe(time.Since(start).Seconds())

	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case len(recs) == 0:
		outcome = "empty"
	}
	ip.c.ProviderFetches.WithLabelValues(outcome).Inc()
	return recs, err
}
