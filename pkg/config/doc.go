// Package config loads typed configuration from environment variables.
//
// Values are read with github.com/caarlos0/env/v11 using `env` and
// `envDefault` struct tags. Before the first parse the package loads a .env
// file from the working directory (or the files given with WithEnvFiles)
// through github.com/joho/godotenv; variables already present in the
// environment win over the file.
//
// Each configuration type is parsed once and cached, so calling Load for the
// same type from several packages returns the same values. Reset clears the
// cache, which is mostly useful in tests.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config
