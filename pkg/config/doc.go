// Package config fills configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is loaded once, if present.
//     Additional dotenv files can be requested with WithEnvFiles.
//   - Struct fields are filled from `env` tags, optionally behind a prefix
//     (WithPrefix), so several components can share one process environment.
//   - Parse overlays the environment on the values already present in the
//     struct, so a defaults factory can run first.
//
// # Usage
//
//	type Settings struct {
//		RemoteURL string        `env:"REMOTE_URL"`
//		Timeout   time.Duration `env:"REMOTE_TIMEOUT"`
//	}
//
//	s := Settings{RemoteURL: "/validate", Timeout: 5 * time.Second}
//	if err := config.Parse(&s, config.WithPrefix("FORMRULES_")); err != nil {
//		return err
//	}
//
// # Error Handling
//
// Failures are wrapped with ErrParsingConfig or ErrLoadingEnvFile through
// errors.Join so callers can match them with errors.Is. A nil target yields
// ErrNilPointer.
package config
