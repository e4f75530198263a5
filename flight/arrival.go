package flight

import (
	"context"
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/flight-transfer/internal/logging"
	"github.com/theoremus-urban-solutions/flight-transfer/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/theoremus-urban-solutions/flight-transfer/flight"

const (
	DefaultLookbackDays = 5
	DefaultHistoryLimit = 3
	DefaultMinSamples   = 3
)

// Estimator infers arrival instants from a flight record, falling back to the
// average duration of recent finished occurrences of the same flight.
type Estimator struct {
	provider     Provider
	lookbackDays int
	historyLimit int
	minSamples   int
	log          logging.Logger
}

// EstimatorOption configures an Estimator.
type EstimatorOption func(*Estimator)

// WithLookbackDays bounds how many prior days are queried.
func WithLookbackDays(n int) EstimatorOption {
	return func(e *Estimator) {
		if n > 0 {
			e.lookbackDays = n
		}
	}
}

// WithHistoryLimit sets the per-day record limit passed to the provider.
func WithHistoryLimit(n int) EstimatorOption {
	return func(e *Estimator) {
		if n > 0 {
			e.historyLimit = n
		}
	}
}

// WithMinSamples sets the sample count at which the day walk stops.
func WithMinSamples(n int) EstimatorOption {
	return func(e *Estimator) {
		if n > 0 {
			e.minSamples = n
		}
	}
}

// WithLogger sets the estimator's logger.
func WithLogger(l logging.Logger) EstimatorOption {
	return func(e *Estimator) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEstimator creates an Estimator backed by p.
func NewEstimator(p Provider, opts ...EstimatorOption) *Estimator {
	e := &Estimator{
		provider:     p,
		lookbackDays: DefaultLookbackDays,
		historyLimit: DefaultHistoryLimit,
		minSamples:   DefaultMinSamples,
		log:          logging.Noop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EstimateArrival returns the arrival instant of rec. A finished flight with
// a landing time is returned as is. Otherwise, when a takeoff is known, the
// landing is takeoff plus the mean duration of finished flights found on the
// days before refDate. ok is false when neither source yields an estimate.
// Only provider failures are returned as errors.
func (e *Estimator) EstimateArrival(ctx context.Context, rec Record, refDate time.Time) (arrival time.Time, ok bool, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "flight.EstimateArrival")
	defer span.End()
	span.SetAttributes(
		attribute.String("flight", rec.Flight),
		attribute.String("ref_date", utils.FormatDate(refDate)),
	)

	if rec.Ended && rec.Landed != nil {
		span.SetAttributes(attribute.String("source", "landed"))
		return *rec.Landed, true, nil
	}
	if rec.Takeoff == nil {
		span.SetAttributes(attribute.String("source", "none"))
		return time.Time{}, false, nil
	}

	samples, err := e.historicalDurations(ctx, rec.Flight, refDate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return time.Time{}, false, err
	}
	span.SetAttributes(attribute.Int("samples", len(samples)))
	if len(samples) == 0 {
		span.SetAttributes(attribute.String("source", "none"))
		return time.Time{}, false, nil
	}
	span.SetAttributes(attribute.String("source", "history"))
	return rec.Takeoff.Add(mean(samples)), true, nil
}

// historicalDurations walks back one day at a time from refDate, newest day
// first, and stops once minSamples durations are collected or the lookback
// is exhausted. The order matters: the stop condition must see recent days
// before older ones.
func (e *Estimator) historicalDurations(ctx context.Context, designator string, refDate time.Time) ([]time.Duration, error) {
	var samples []time.Duration
	for i := 1; i <= e.lookbackDays && len(samples) < e.minSamples; i++ {
		day := refDate.AddDate(0, 0, -i)
		records, err := e.provider.Fetch(ctx, designator, day, e.historyLimit)
		if err != nil {
			return nil, fmt.Errorf("history for %s on %s: %w", designator, utils.FormatDate(day), err)
		}
		for _, r := range records {
			if d, ok := r.Duration(); ok && d > 0 {
				samples = append(samples, d)
			}
		}
		e.log.Debug(ctx, "history day scanned",
			logging.String("flight", designator),
			logging.String("date", utils.FormatDate(day)),
			logging.Int("records", len(records)),
			logging.Int("samples", len(samples)),
		)
	}
	return samples, nil
}

func mean(ds []time.Duration) time.Duration {
	var sum time.Duration
	for _, d := range ds {
		sum += d
	}
	return sum / time.Duration(len(ds))
}
