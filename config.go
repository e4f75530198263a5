package flighttransfer

import (
	"time"

	"github.com/theoremus-urban-solutions/flight-transfer/config"
	"github.com/theoremus-urban-solutions/flight-transfer/flight"
	"github.com/theoremus-urban-solutions/flight-transfer/fr24"
	"github.com/theoremus-urban-solutions/flight-transfer/internal/logging"
	"github.com/theoremus-urban-solutions/flight-transfer/observability"
	"github.com/theoremus-urban-solutions/flight-transfer/transfer"
)

// LoadAppConfig loads path when given, otherwise config.yml from the default
// search locations, and returns the result.
func LoadAppConfig(path string) (config.AppConfig, error) {
	var err error
	if path != "" {
		err = config.Load(path)
	} else {
		err = config.LoadAppConfig()
	}
	if err != nil {
		return config.AppConfig{}, err
	}
	return config.Config, nil
}

// NewProviderFromConfig builds the flight-summary client described by cfg,
// instrumented with c when c is non-nil.
func NewProviderFromConfig(cfg config.ProviderConfig, c *observability.Collector) flight.Provider {
	client := fr24.NewClient(
		fr24.WithBaseURL(cfg.BaseURL),
		fr24.WithToken(cfg.Token),
		fr24.WithAPIVersion(cfg.APIVersion),
		fr24.WithTimeout(time.Duration(cfg.TimeoutMS)*time.Millisecond),
	)
	return observability.InstrumentProvider(client, c)
}

// NewServiceFromConfig builds the transfer service over p.
func NewServiceFromConfig(cfg config.TransferConfig, p flight.Provider, log logging.Logger) *transfer.Service {
	est := flight.NewEstimator(p,
		flight.WithLookbackDays(cfg.LookbackDays),
		flight.WithHistoryLimit(cfg.HistoryLimit),
		flight.WithMinSamples(cfg.MinSamples),
		flight.WithLogger(log),
	)
	return transfer.NewService(p,
		transfer.WithServiceTime(cfg.ServiceTimeMinutes),
		transfer.WithOffsetMinutes(cfg.OffsetMinutes),
		transfer.WithEstimator(est),
		transfer.WithLogger(log),
	)
}

// NewServerFromConfig builds the HTTP server described by cfg.
func NewServerFromConfig(cfg config.ServerConfig, svc *transfer.Service, c *observability.Collector, log logging.Logger) *Server {
	return NewServer(svc,
		WithPort(cfg.Port),
		WithStaticDir(cfg.StaticDir),
		WithAllowedOrigin(cfg.AllowedOrigin),
		WithMetrics(c),
		WithServerLogger(log),
	)
}

// TracingConfigFrom converts the tracing section for observability.InitTracing.
func TracingConfigFrom(cfg config.TracingConfig) observability.TracingConfig {
	return observability.TracingConfig{
		Enabled:     cfg.Enabled,
		ServiceName: cfg.ServiceName,
		Exporter:    cfg.Exporter,
		Endpoint:    cfg.Endpoint,
		SampleRatio: cfg.SampleRatio,
	}
}
