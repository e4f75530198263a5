package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port          int    `yaml:"port" validate:"gt=0,lte=65535"`
	StaticDir     string `yaml:"staticDir" validate:"omitempty"`
	AllowedOrigin string `yaml:"allowedOrigin" validate:"omitempty"`
}

// ProviderConfig contains flight data provider configuration
type ProviderConfig struct {
	BaseURL    string `yaml:"baseURL" validate:"omitempty,url"`
	Token      string `yaml:"token"`
	APIVersion string `yaml:"apiVersion"`
	TimeoutMS  int    `yaml:"timeoutMS" validate:"gte=0"`
}

// TransferConfig contains the transfer check parameters
type TransferConfig struct {
	ServiceTimeMinutes int `yaml:"serviceTimeMinutes" validate:"gte=0"`
	OffsetMinutes      int `yaml:"offsetMinutes" validate:"gte=-720,lte=840"`
	LookbackDays       int `yaml:"lookbackDays" validate:"gte=0,lte=31"`
	HistoryLimit       int `yaml:"historyLimit" validate:"gte=0"`
	MinSamples         int `yaml:"minSamples" validate:"gte=0"`
}

// LoggingConfig contains logger configuration
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// TracingConfig contains OpenTelemetry configuration
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Exporter    string  `yaml:"exporter" validate:"omitempty,oneof=stdout otlp otlpgrpc"`
	Endpoint    string  `yaml:"endpoint"`
	ServiceName string  `yaml:"serviceName"`
	SampleRatio float64 `yaml:"sampleRatio" validate:"gte=0,lte=1"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Provider ProviderConfig `yaml:"provider"`
	Transfer TransferConfig `yaml:"transfer"`
	Logging  LoggingConfig  `yaml:"logging"`
	Tracing  TracingConfig  `yaml:"tracing"`
}
