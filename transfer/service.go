package transfer

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/theoremus-urban-solutions/flight-transfer/flight"
	"github.com/theoremus-urban-solutions/flight-transfer/gates"
	"github.com/theoremus-urban-solutions/flight-transfer/internal/logging"
	"github.com/theoremus-urban-solutions/flight-transfer/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/theoremus-urban-solutions/flight-transfer/transfer"

var validate = validator.New()

// FlightQuery identifies one flight occurrence.
type FlightQuery struct {
	Flight string `validate:"required"`
	Date   string `validate:"required,datetime=2006-01-02"`
}

// Request asks whether a passenger can connect from Flight1 to Flight2.
type Request struct {
	Flight1    string `validate:"required"`
	Date1      string `validate:"required,datetime=2006-01-02"`
	Flight2    string `validate:"required"`
	Date2      string `validate:"required,datetime=2006-01-02"`
	FirstGate  string
	SecondGate string
}

// FlightStatus is the current record of a flight plus its estimated arrival.
type FlightStatus struct {
	Record           flight.Record `json:"flightData"`
	EstimatedArrival *string       `json:"estimated_arrival"`
}

// Service answers flight lookups and transfer feasibility checks.
type Service struct {
	provider    flight.Provider
	estimator   *flight.Estimator
	serviceTime int
	offset      int
	now         func() time.Time
	log         logging.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithServiceTime sets the advisory threshold in minutes.
func WithServiceTime(minutes int) Option {
	return func(s *Service) {
		if minutes > 0 {
			s.serviceTime = minutes
		}
	}
}

// WithOffsetMinutes sets the fixed offset used to render arrival times.
func WithOffsetMinutes(minutes int) Option {
	return func(s *Service) { s.offset = minutes }
}

// WithClock sets the clock the skytrain bands are read from.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithEstimator replaces the default arrival estimator.
func WithEstimator(e *flight.Estimator) Option {
	return func(s *Service) {
		if e != nil {
			s.estimator = e
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService creates a Service fetching flights from p.
func NewService(p flight.Provider, opts ...Option) *Service {
	s := &Service{
		provider:    p,
		serviceTime: DefaultServiceTimeMinutes,
		offset:      utils.SGTOffsetMinutes,
		now:         time.Now,
		log:         logging.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.estimator == nil {
		s.estimator = flight.NewEstimator(p, flight.WithLogger(s.log))
	}
	return s
}

// ServiceTime returns the advisory threshold in minutes.
func (s *Service) ServiceTime() int { return s.serviceTime }

// LookupFlight returns the most recent record of a flight on a date with its
// estimated arrival. A flight that cannot be estimated still resolves, with a
// nil EstimatedArrival.
func (s *Service) LookupFlight(ctx context.Context, q FlightQuery) (FlightStatus, error) {
	q.Flight = strings.TrimSpace(q.Flight)
	if err := validate.Struct(q); err != nil {
		return FlightStatus{}, newError(ErrInvalidInput, "Invalid or missing flight/date", err)
	}
	date, err := utils.ParseDate(q.Date)
	if err != nil {
		return FlightStatus{}, newError(ErrInvalidInput, "Invalid or missing flight/date", err)
	}

	rec, err := s.current(ctx, q.Flight, date)
	if err != nil {
		return FlightStatus{}, err
	}
	if rec == nil {
		return FlightStatus{}, newError(ErrNotFound, "No current flight found", nil)
	}

	arrival, ok, err := s.estimator.EstimateArrival(ctx, *rec, date)
	if err != nil {
		return FlightStatus{}, newError(ErrProvider, "estimating arrival", err)
	}
	status := FlightStatus{Record: *rec}
	if ok {
		status.EstimatedArrival = utils.ToFixedOffsetISO(&arrival, s.offset)
	}
	return status, nil
}

// Evaluate estimates both arrivals and checks the connection against the
// gate transit and service time. Provider calls for the two flights run
// concurrently.
func (s *Service) Evaluate(ctx context.Context, req Request) (Verdict, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "transfer.Evaluate")
	defer span.End()

	v, err := s.evaluate(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Verdict{}, err
	}
	span.SetAttributes(
		attribute.Int("absolute_timing_minutes", v.AbsoluteTimingMinutes),
		attribute.Bool("advisory", v.Advisory()),
	)
	return v, nil
}

func (s *Service) evaluate(ctx context.Context, req Request) (Verdict, error) {
	req.Flight1 = strings.TrimSpace(req.Flight1)
	req.Flight2 = strings.TrimSpace(req.Flight2)
	if err := validate.Struct(req); err != nil {
		return Verdict{}, newError(ErrInvalidInput, "Missing flight or date parameters", err)
	}
	date1, err := utils.ParseDate(req.Date1)
	if err != nil {
		return Verdict{}, newError(ErrInvalidInput, "Missing flight or date parameters", err)
	}
	date2, err := utils.ParseDate(req.Date2)
	if err != nil {
		return Verdict{}, newError(ErrInvalidInput, "Missing flight or date parameters", err)
	}

	var rec1, rec2 *flight.Record
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rec1, err = s.current(gctx, req.Flight1, date1)
		return err
	})
	g.Go(func() (err error) {
		rec2, err = s.current(gctx, req.Flight2, date2)
		return err
	})
	if err := g.Wait(); err != nil {
		return Verdict{}, err
	}
	if rec1 == nil || rec2 == nil {
		return Verdict{}, newError(ErrNotFound, "One or both flights not found", nil)
	}

	var arr1, arr2 time.Time
	var ok1, ok2 bool
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		arr1, ok1, err = s.estimator.EstimateArrival(gctx, *rec1, date1)
		return err
	})
	g.Go(func() (err error) {
		arr2, ok2, err = s.estimator.EstimateArrival(gctx, *rec2, date2)
		return err
	})
	if err := g.Wait(); err != nil {
		return Verdict{}, newError(ErrProvider, "estimating arrivals", err)
	}
	if !ok1 || !ok2 {
		return Verdict{}, newError(ErrEstimationUnavailable, "Could not estimate one or both arrivals", nil)
	}

	transit := gates.Transit(req.FirstGate, req.SecondGate, s.now())
	v := NewVerdict(
		Leg{Flight: req.Flight1, Arrival: arr1, Delay: flight.DelayFor(*rec1)},
		Leg{Flight: req.Flight2, Arrival: arr2, Delay: flight.DelayFor(*rec2)},
		req.FirstGate, req.SecondGate, transit, s.serviceTime, s.offset,
	)
	s.log.Info(ctx, "transfer evaluated",
		logging.String("flight1", req.Flight1),
		logging.String("flight2", req.Flight2),
		logging.Int("absolute_timing_minutes", v.AbsoluteTimingMinutes),
		logging.String("gate_note", transit.Note),
	)
	return v, nil
}

// current fetches the most recent record of a flight on date; nil when the
// provider has none.
func (s *Service) current(ctx context.Context, designator string, date time.Time) (*flight.Record, error) {
	recs, err := s.provider.Fetch(ctx, designator, date, 1)
	if err != nil {
		return nil, newError(ErrProvider, "fetching "+designator, err)
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}
