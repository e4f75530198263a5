// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml over built-in defaults, then
// PORT, FR24_API_TOKEN, LOG_LEVEL and LOG_FORMAT from the environment are
// applied, and the result is validated using struct tags.
package config
