package fr24

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/flight-transfer/flight"
	"github.com/theoremus-urban-solutions/flight-transfer/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultBaseURL    = "https://fr24api.flightradar24.com"
	DefaultAPIVersion = "v1"
	DefaultTimeout    = 30 * time.Second

	flightSummaryPath = "/api/flight-summary/full"
	tracerName        = "github.com/theoremus-urban-solutions/flight-transfer/fr24"

	// error bodies are quoted in errors up to this many bytes
	maxErrorBody = 512
)

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL overrides the API endpoint (useful for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithAPIVersion sets the Accept-Version header.
func WithAPIVersion(v string) Option {
	return func(c *Client) {
		if v != "" {
			c.apiVersion = v
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// Client queries the flight-summary API. It implements flight.Provider.
type Client struct {
	baseURL    string
	token      string
	apiVersion string
	httpClient *http.Client
}

var _ flight.Provider = (*Client)(nil)

// NewClient creates a flight-summary client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiVersion: DefaultAPIVersion,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// summaryResponse mirrors the JSON envelope of /api/flight-summary/full.
type summaryResponse struct {
	Data []flight.Record `json:"data"`
}

// Fetch returns up to limit summaries of designator flown on date, newest
// first. Any non-200 answer is an error.
func (c *Client) Fetch(ctx context.Context, designator string, date time.Time, limit int) ([]flight.Record, error) {
	day := utils.FormatDate(date)
	ctx, span := otel.Tracer(tracerName).Start(ctx, "fr24.FlightSummary",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("flight", designator),
			attribute.String("date", day),
			attribute.Int("limit", limit),
		))
	defer span.End()

	recs, err := c.fetch(ctx, designator, day, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("records", len(recs)))
	return recs, nil
}

func (c *Client) fetch(ctx context.Context, designator, day string, limit int) ([]flight.Record, error) {
	q := url.Values{}
	q.Set("flight_datetime_from", day+"T00:00:00")
	q.Set("flight_datetime_to", day+"T23:59:59")
	q.Set("flights", designator)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("sort", "desc")
	target := c.baseURL + flightSummaryPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Version", c.apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s on %s: %w", designator, day, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var out summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("parsing flight summary for %s on %s: %w", designator, day, err)
	}
	return out.Data, nil
}

// StatusError is returned for non-200 answers from the API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d from flight summary API", e.Code)
	}
	return fmt.Sprintf("HTTP %d from flight summary API: %s", e.Code, e.Body)
}
