// Package config loads typed configuration from the environment.
//
// Struct fields are mapped with caarlos0/env tags. A .env file in the working
// directory is read once, on the first Load, and never overrides variables
// that are already set:
//
//	type LimiterConfig struct {
//		Capacity   float64 `env:"RATE_LIMIT_CAPACITY" envDefault:"10"`
//		RefillRate float64 `env:"RATE_LIMIT_REFILL_RATE" envDefault:"2"`
//	}
//
//	var cfg LimiterConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Nested structs are parsed too, so a command can embed the configs of the
// packages it wires (ratelimiter.Config, for one) in its own struct.
//
// Results are cached per struct type: a second Load of the same type returns
// the first result without reading the environment again. Tests that change
// the environment call Reset between cases.
package config
