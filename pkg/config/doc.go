// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for optional .env files and
// github.com/caarlos0/env/v11 for struct parsing. Each configuration type is
// parsed once and cached for the lifetime of the process; Reset clears the
// cache in tests.
//
// # Usage
//
//	type HTTPConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTPConfig
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrInvalidConfigType,
// ErrNilPointer and ErrLoadingEnvFile and can be matched with errors.Is.
package config
