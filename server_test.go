package flighttransfer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/flight-transfer/flight"
	"github.com/theoremus-urban-solutions/flight-transfer/observability"
	"github.com/theoremus-urban-solutions/flight-transfer/transfer"
)

// flights maps "DESIGNATOR|YYYY-MM-DD" to provider records.
type flights map[string][]flight.Record

func (f flights) provider() flight.Provider {
	return flight.ProviderFunc(func(_ context.Context, designator string, date time.Time, _ int) ([]flight.Record, error) {
		return f[designator+"|"+date.Format("2006-01-02")], nil
	})
}

func mustTime(t *testing.T, s string) *time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return &v
}

func landed(t *testing.T, designator, takeoff, landing string) flight.Record {
	return flight.Record{
		Flight:  designator,
		Takeoff: mustTime(t, takeoff),
		Landed:  mustTime(t, landing),
		Ended:   true,
	}
}

func newTestServer(t *testing.T, p flight.Provider, opts ...ServerOption) (*httptest.Server, *observability.Collector) {
	t.Helper()
	c, err := observability.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)
	svc := transfer.NewService(p, transfer.WithClock(func() time.Time {
		return time.Date(2024, 5, 1, 2, 0, 0, 0, time.UTC)
	}))
	srv := NewServer(svc, append([]ServerOption{WithMetrics(c)}, opts...)...)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, c
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t, flights{}.provider())

	var body map[string]string
	resp := getJSON(t, ts.URL+"/api/health", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	_, err := time.Parse(time.RFC3339, body["time"])
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRequestIDIsReused(t *testing.T) {
	ts, _ := newTestServer(t, flights{}.provider())

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	ts, _ := newTestServer(t, flights{}.provider(), WithAllowedOrigin("https://ops.example"))

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/calculate", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://ops.example", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "GET")
}

func TestMethodNotAllowed(t *testing.T) {
	ts, _ := newTestServer(t, flights{}.provider())

	resp, err := http.Post(ts.URL+"/api/flight", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestFlight(t *testing.T) {
	var raw flight.Record
	require.NoError(t, json.Unmarshal([]byte(`{
		"flight": "SQ321",
		"flight_ended": true,
		"datetime_takeoff": "2024-05-01T01:00:00Z",
		"datetime_landed": "2024-05-01T10:00:00Z",
		"orig_icao": "EGLL"
	}`), &raw))
	ts, _ := newTestServer(t, flights{"SQ321|2024-05-01": {raw}}.provider())

	var body struct {
		FlightData       map[string]any `json:"flightData"`
		EstimatedArrival *string        `json:"estimated_arrival"`
	}
	resp := getJSON(t, ts.URL+"/api/flight?flight=SQ321&date=2024-05-01", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "EGLL", body.FlightData["orig_icao"])
	require.NotNil(t, body.EstimatedArrival)
	assert.Equal(t, "2024-05-01T18:00:00+08:00", *body.EstimatedArrival)
}

func TestFlightWithoutEstimate(t *testing.T) {
	rec := flight.Record{Flight: "SQ321"}
	ts, _ := newTestServer(t, flights{"SQ321|2024-05-01": {rec}}.provider())

	var body map[string]any
	resp := getJSON(t, ts.URL+"/api/flight?flight=SQ321&date=2024-05-01", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "estimated_arrival")
	assert.Nil(t, body["estimated_arrival"])
}

func TestFlightErrors(t *testing.T) {
	failing := flight.ProviderFunc(func(context.Context, string, time.Time, int) ([]flight.Record, error) {
		return nil, errors.New("401 unauthorized")
	})
	tests := []struct {
		name     string
		provider flight.Provider
		query    string
		status   int
		message  string
		details  string
	}{
		{"missing date", flights{}.provider(), "flight=SQ321", 400, "Invalid or missing flight/date", ""},
		{"bad date", flights{}.provider(), "flight=SQ321&date=01-05-2024", 400, "Invalid or missing flight/date", ""},
		{"missing flight", flights{}.provider(), "date=2024-05-01", 400, "Invalid or missing flight/date", ""},
		{"not found", flights{}.provider(), "flight=SQ321&date=2024-05-01", 404, "No current flight found", ""},
		{"provider", failing, "flight=SQ321&date=2024-05-01", 500, "Internal server error", "401 unauthorized"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, _ := newTestServer(t, tt.provider)

			var body errorResponse
			resp := getJSON(t, ts.URL+"/api/flight?"+tt.query, &body)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.message, body.Error)
			assert.Contains(t, body.Details, tt.details)
			if tt.details == "" {
				assert.Empty(t, body.Details)
			}
		})
	}
}

func TestCalculate(t *testing.T) {
	f := flights{
		"SQ1|2024-05-01": {landed(t, "SQ1", "2024-05-01T01:00:00Z", "2024-05-01T10:00:00Z")},
		"SQ2|2024-05-01": {landed(t, "SQ2", "2024-05-01T03:00:00Z", "2024-05-01T11:30:00Z")},
	}
	ts, c := newTestServer(t, f.provider())

	var body map[string]any
	resp := getJSON(t, ts.URL+"/api/calculate?flight1=SQ1&date1=2024-05-01&flight2=SQ2&date2=2024-05-01&firstGate=A1&secondGate=A12", &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(90), body["difference_minutes"])
	assert.Equal(t, float64(0), body["delay_timings_minutes"])
	assert.Equal(t, float64(90), body["difference_with_delays_minutes"])
	assert.Equal(t, float64(52), body["service_time_minutes"])
	assert.Equal(t, float64(84), body["absolute_timing_minutes"])
	assert.NotContains(t, body, "message")

	gates := body["gates"].(map[string]any)
	assert.Equal(t, "A1", gates["firstGate"])
	assert.Equal(t, "A12", gates["secondGate"])
	assert.Equal(t, float64(6), gates["minutes"])
	assert.Nil(t, gates["skytrain"])
	assert.Nil(t, gates["note"])

	leg1 := body["flight1"].(map[string]any)
	assert.Equal(t, "SQ1", leg1["flight"])
	assert.Equal(t, "2024-05-01T18:00:00+08:00", leg1["estimated_arrival"])

	assert.Equal(t, float64(1), testutil.ToFloat64(c.Verdicts.WithLabelValues("false")))
}

func TestCalculateAdvisory(t *testing.T) {
	f := flights{
		"SQ1|2024-05-01": {landed(t, "SQ1", "2024-05-01T01:00:00Z", "2024-05-01T10:00:00Z")},
		"SQ2|2024-05-01": {landed(t, "SQ2", "2024-05-01T03:00:00Z", "2024-05-01T10:30:00Z")},
	}
	ts, c := newTestServer(t, f.provider())

	var body map[string]any
	resp := getJSON(t, ts.URL+"/api/calculate?flight1=SQ1&date1=2024-05-01&flight2=SQ2&date2=2024-05-01", &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(30), body["absolute_timing_minutes"])
	assert.Equal(t, transfer.AdvisoryMessage, body["message"])

	gates := body["gates"].(map[string]any)
	assert.Nil(t, gates["firstGate"])
	assert.Nil(t, gates["secondGate"])
	assert.Equal(t, float64(0), gates["minutes"])

	assert.Equal(t, float64(1), testutil.ToFloat64(c.Verdicts.WithLabelValues("true")))
}

func TestCalculateErrors(t *testing.T) {
	both := flights{
		"SQ1|2024-05-01": {landed(t, "SQ1", "2024-05-01T01:00:00Z", "2024-05-01T10:00:00Z")},
		"SQ2|2024-05-01": {{Flight: "SQ2"}},
	}
	failing := flight.ProviderFunc(func(context.Context, string, time.Time, int) ([]flight.Record, error) {
		return nil, errors.New("connection refused")
	})
	tests := []struct {
		name     string
		provider flight.Provider
		query    string
		status   int
		message  string
	}{
		{"missing params", both.provider(), "flight1=SQ1&date1=2024-05-01", 400, "Missing flight or date parameters"},
		{"bad date", both.provider(), "flight1=SQ1&date1=2024-5-1&flight2=SQ2&date2=2024-05-01", 400, "Missing flight or date parameters"},
		{"not found", both.provider(), "flight1=SQ1&date1=2024-05-01&flight2=SQ9&date2=2024-05-01", 404, "One or both flights not found"},
		{"not estimable", both.provider(), "flight1=SQ1&date1=2024-05-01&flight2=SQ2&date2=2024-05-01", 400, "Could not estimate one or both arrivals"},
		{"provider", failing, "flight1=SQ1&date1=2024-05-01&flight2=SQ2&date2=2024-05-01", 500, "Server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, _ := newTestServer(t, tt.provider)

			var body errorResponse
			resp := getJSON(t, ts.URL+"/api/calculate?"+tt.query, &body)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.message, body.Error)
			if tt.status == http.StatusInternalServerError {
				assert.Contains(t, body.Details, "connection refused")
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts, _ := newTestServer(t, flights{}.provider())

	getJSON(t, ts.URL+"/api/health", nil).Body.Close()
	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(b), `http_requests_total{code="200",route="health"} 1`)
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>transfers</h1>"), 0o644))
	ts, _ := newTestServer(t, flights{}.provider(), WithStaticDir(dir))

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(b), "transfers"))
}

func TestNoStaticDir(t *testing.T) {
	ts, _ := newTestServer(t, flights{}.provider())

	resp, err := http.Get(ts.URL + "/index.html")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
}
