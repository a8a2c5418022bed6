// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file with viper, optionally preceded by a .env file,
// and can be overridden with SP_-prefixed environment variables
// (for example SP_PAYMENT_GATEWAY_CONSUMER_SECRET). Every section validates itself
// so a misconfigured deployment fails at startup rather than on the first request.
package config
