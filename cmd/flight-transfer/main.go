package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	lib "github.com/theoremus-urban-solutions/flight-transfer"
	"github.com/theoremus-urban-solutions/flight-transfer/config"
	"github.com/theoremus-urban-solutions/flight-transfer/flight"
	"github.com/theoremus-urban-solutions/flight-transfer/observability"
	"github.com/theoremus-urban-solutions/flight-transfer/transfer"
)

type options struct {
	mode       string
	configPath string
	port       int
	call       string
	fixtures   string

	flight1, date1 string
	flight2, date2 string
	firstGate      string
	secondGate     string
}

func main() {
	var opts options
	setupCommandLineFlags(&opts)
	pflag.Parse()

	if err := run(context.Background(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "flight-transfer: %v\n", err)
		os.Exit(1)
	}
}

func setupCommandLineFlags(o *options) {
	pflag.StringVarP(&o.mode, "mode", "m", "serve", "serve|oneshot")
	pflag.StringVarP(&o.configPath, "config", "c", "", "path to config.yml (default: search ./config.yml, ./config/config.yml)")
	pflag.IntVarP(&o.port, "port", "p", 0, "listen port (overrides config and PORT)")
	pflag.StringVar(&o.call, "call", "calculate", "oneshot call: flight|calculate")
	pflag.StringVar(&o.fixtures, "fixtures", "", "read flights from DIR/<FLIGHT>_<DATE>.json instead of the API")
	pflag.StringVar(&o.flight1, "flight1", "", "first (or only) flight designator")
	pflag.StringVar(&o.date1, "date1", "", "date of flight1, YYYY-MM-DD")
	pflag.StringVar(&o.flight2, "flight2", "", "connecting flight designator")
	pflag.StringVar(&o.date2, "date2", "", "date of flight2, YYYY-MM-DD")
	pflag.StringVar(&o.firstGate, "first-gate", "", "arrival gate of flight1, e.g. A12")
	pflag.StringVar(&o.secondGate, "second-gate", "", "departure gate of flight2, e.g. E24")
}

func run(ctx context.Context, o options) error {
	cfg, err := lib.LoadAppConfig(o.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if o.port > 0 {
		cfg.Server.Port = o.port
	}

	log := lib.InitLogging(cfg.Logging)
	shutdown, err := observability.InitTracing(ctx, lib.TracingConfigFrom(cfg.Tracing), log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdown, log)

	switch o.mode {
	case "serve":
		metrics, err := observability.NewCollector(nil)
		if err != nil {
			return fmt.Errorf("init metrics: %w", err)
		}
		svc := lib.NewServiceFromConfig(cfg.Transfer, providerFor(cfg, o.fixtures, metrics), log)
		srv := lib.NewServerFromConfig(cfg.Server, svc, metrics, log)
		srv.Start()
		srv.HandleGracefulShutdown()
		return nil
	case "oneshot":
		svc := lib.NewServiceFromConfig(cfg.Transfer, providerFor(cfg, o.fixtures, nil), log)
		buf, err := oneshot(ctx, svc, o)
		if err != nil {
			return err
		}
		fmt.Println(string(buf))
		return nil
	default:
		return fmt.Errorf("unknown mode %q", o.mode)
	}
}

func providerFor(cfg config.AppConfig, fixtures string, metrics *observability.Collector) flight.Provider {
	if fixtures != "" {
		return observability.InstrumentProvider(newFixtureProvider(fixtures), metrics)
	}
	return lib.NewProviderFromConfig(cfg.Provider, metrics)
}

// oneshot runs a single call and returns its indented JSON result.
func oneshot(ctx context.Context, svc *transfer.Service, o options) ([]byte, error) {
	var result any
	switch o.call {
	case "flight":
		status, err := svc.LookupFlight(ctx, transfer.FlightQuery{Flight: o.flight1, Date: o.date1})
		if err != nil {
			return nil, err
		}
		result = status
	case "calculate":
		v, err := svc.Evaluate(ctx, transfer.Request{
			Flight1:    o.flight1,
			Date1:      o.date1,
			Flight2:    o.flight2,
			Date2:      o.date2,
			FirstGate:  o.firstGate,
			SecondGate: o.secondGate,
		})
		if err != nil {
			return nil, err
		}
		result = v
	default:
		return nil, fmt.Errorf("unknown call %q", o.call)
	}
	return json.MarshalIndent(result, "", "  ")
}
