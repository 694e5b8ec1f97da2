// Package config loads storefront settings from a TOML file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/storefront/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// Command-line flags and environment variables are applied afterwards through
// Config.Apply and win over the file.
//
// # Default Values
//
//   - api_url: https://fakestoreapi.com
//   - storage_path: ~/.config/storefront/storage.toml
//   - log_file: ~/.local/state/storefront/storefront.log ("off" disables)
//   - log_level: info
//   - request_timeout: 15s
//   - currency: INR, with inr_rate = 83
//
// # Example
//
//	api_url = "https://fakestoreapi.com"
//	request_timeout = "10s"
//	currency = "USD"
//
// # Errors
//
// A missing file is not an error. An unreadable file, invalid TOML, or a value
// that does not parse (log level, duration, currency, rate) is returned as an
// error and the caller aborts startup.
//
// Paths starting with ~ are expanded against the user's home directory and
// made absolute.
package config
