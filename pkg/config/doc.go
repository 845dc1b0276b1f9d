// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (missing files are fine), and
// each configuration type is parsed at most once and cached for the process
// lifetime, so independent components can share the same config struct
// without coordinating.
//
// Usage:
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//		Env  string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
package config
