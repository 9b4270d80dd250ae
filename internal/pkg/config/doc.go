// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file and may be overridden through SF_-prefixed
// environment variables. Every settings struct validates itself before it is
// handed to the rest of the application.
package config
