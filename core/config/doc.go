// Package config loads typed settings from the environment.
//
// Every package that needs settings declares a struct with caarlos0/env tags
// and the command loads it once at startup. A .env file in the working
// directory is read on first use and never overrides variables already set.
//
//	type Config struct {
//		BasePath         string        `env:"BASE_PATH" envDefault:"/"`
//		AutoPlayInterval time.Duration `env:"CAROUSEL_AUTOPLAY_INTERVAL" envDefault:"5s"`
//		Recipient        string        `env:"CONTACT_RECIPIENT,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Values are cached per type: a second Load of the same type copies the first
// result without reading the environment again. Call Reset in tests that
// change variables between loads.
package config
