package observability

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/theoremus-urban-solutions/flight-transfer/flight"
)

func TestMiddlewareRecordsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	h := c.Middleware("/api/calculate", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/calculate", nil))

	ok := c.Middleware("/api/flight", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}))
	ok.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/flight", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("/api/calculate", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("/api/flight", "200")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.HTTPDurations))
}

func TestNewCollectorReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewCollector(reg)
	require.NoError(t, err)
	b, err := NewCollector(reg)
	require.NoError(t, err)
	assert.Same(t, a.HTTPRequests, b.HTTPRequests)
}

func TestInstrumentProvider(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	boom := errors.New("boom")
	var calls int
	p := InstrumentProvider(flight.ProviderFunc(func(_ context.Context, designator string, _ time.Time, _ int) ([]flight.Record, error) {
		calls++
		switch designator {
		case "ERR":
			return nil, boom
		case "NONE":
			return nil, nil
		}
		return []flight.Record{{Flight: designator}}, nil
	}), c)

	day := time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)
	recs, err := p.Fetch(context.Background(), "SQ1", day, 1)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
	_, _ = p.Fetch(context.Background(), "NONE", day, 1)
	_, err = p.Fetch(context.Background(), "ERR", day, 1)
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, 3, calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ProviderFetches.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ProviderFetches.WithLabelValues("empty")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ProviderFetches.WithLabelValues("error")))

	var nilCollector *Collector
	inner := flight.ProviderFunc(func(context.Context, string, time.Time, int) ([]flight.Record, error) { return nil, nil })
	assert.NotNil(t, InstrumentProvider(inner, nilCollector))
}

func TestHandlerExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	c.ObserveVerdict(true)
	c.ObserveVerdict(false)
	c.ObserveVerdict(true)

	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body, _ := io.ReadAll(rr.Body)
	assert.Contains(t, string(body), `transfer_verdicts_total{advisory="true"} 2`)
	assert.Contains(t, string(body), `transfer_verdicts_total{advisory="false"} 1`)
}

func TestInitTracingDisabled(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), TracingConfig{}, nil)
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	_, span := otel.Tracer("test").Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
}

func TestInitTracingStdout(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := InitTracing(context.Background(), TracingConfig{
		Enabled:     true,
		Exporter:    "stdout",
		SampleRatio: 1,
		Writer:      &buf,
	}, nil)
	require.NoError(t, err)
	defer func() { _, _ = InitTracing(context.Background(), TracingConfig{}, nil) }()

	_, span := otel.Tracer("test").Start(context.Background(), "transfer.Evaluate")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	ShutdownWithTimeout(context.Background(), shutdown, nil)
	assert.True(t, strings.Contains(buf.String(), "transfer.Evaluate"))
}

func TestInitTracingUnknownExporter(t *testing.T) {
	_, err := InitTracing(context.Background(), TracingConfig{Enabled: true, Exporter: "zipkin"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported tracing exporter")
}
