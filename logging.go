package flighttransfer

import (
	"os"

	"github.com/theoremus-urban-solutions/flight-transfer/config"
	"github.com/theoremus-urban-solutions/flight-transfer/internal/logging"
)

// InitLogging builds the process logger writing to stdout.
func InitLogging(cfg config.LoggingConfig) logging.Logger {
	return logging.New(logging.Config{
		Level:  cfg.Level,
		Format: cfg.Format,
		Output: os.Stdout,
	})
}
