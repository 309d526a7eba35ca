// Package config loads typed configuration structs from environment
// variables using `env` struct tags, with optional .env file support for
// local development.
//
// Each package that needs configuration declares its own Config struct
// and loads it independently:
//
//	cfg, err := config.Load[pg.Config]()
//	if err != nil {
//		return err
//	}
//
// MustLoad panics on failure and suits main() wiring where a missing
// required variable should stop the process.
package config
