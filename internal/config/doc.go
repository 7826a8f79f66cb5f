// Package config reads and writes user settings stored at
// ~/.templatekit/config.yaml, backed by Viper with env var overrides.
package config
