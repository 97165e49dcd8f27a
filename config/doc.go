// Package config handles loading and parsing of configuration from YAML files
// and environment variables. It defines the listen address, runtime
// environment, log verbosity and metrics buffering of the service.
package config
