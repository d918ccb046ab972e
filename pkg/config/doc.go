// Package config loads application configuration from environment variables.
//
// Configuration is declared as plain structs with `env` tags and parsed with
// caarlos0/env. A .env file, if present, is loaded once through godotenv
// before the first parse. Each configuration type is parsed exactly once per
// process and cached, so independent components can load the same struct
// without coordination:
//
//	type ServerConfig struct {
//	    Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
package config
