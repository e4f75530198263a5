package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// searchPaths are tried in order when no explicit path is given.
var searchPaths = []string{"config.yml", "./config/config.yml"}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() AppConfig {
	return AppConfig{
		Server: ServerConfig{Port: 3000, AllowedOrigin: "*"},
		Provider: ProviderConfig{
			BaseURL:    "https://fr24api.flightradar24.com",
			APIVersion: "v1",
			TimeoutMS:  30000,
		},
		Transfer: TransferConfig{
			ServiceTimeMinutes: 52,
			OffsetMinutes:      480,
			LookbackDays:       5,
			HistoryLimit:       3,
			MinSamples:         3,
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Tracing: TracingConfig{Exporter: "stdout", ServiceName: "flight-transfer", SampleRatio: 1},
	}
}

// LoadAppConfig loads config.yml from the search path into Config. A missing
// file is not an error: defaults and environment overrides still apply.
func LoadAppConfig() error {
	var data []byte
	for _, p := range searchPaths {
		b, err := os.ReadFile(p)
		if err == nil {
			data = b
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	cfg, err := parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Load reads the configuration at path into Config. The file must exist.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg, err := parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	Config = cfg
	return nil
}

func parse(data []byte) (AppConfig, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return AppConfig{}, err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// applyEnv lets the environment override credentials and process settings.
func applyEnv(cfg *AppConfig) error {
	if p := os.Getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if tok := os.Getenv("FR24_API_TOKEN"); tok != "" {
		cfg.Provider.Token = tok
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	if f := os.Getenv("LOG_FORMAT"); f != "" {
		cfg.Logging.Format = f
	}
	return nil
}
