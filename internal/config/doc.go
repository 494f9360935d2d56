// Package config loads bedboard's runtime settings.
//
// # Resolution Order
//
//  1. Built-in defaults
//  2. TOML file (explicit path, or ~/.config/bedboard/config.toml)
//  3. .env in the working directory, for variables not already set
//  4. BEDBOARD_* environment variables
//
// A missing config file is not an error. Invalid TOML, or a non-integer
// BEDBOARD_INTERVAL_MINUTES, is.
//
// # TOML Format
//
//	feed_url = "https://proxy-housing.12458.workers.dev"
//	interval_minutes = 1
//	request_timeout_seconds = 10
//	log_dir = "~/.local/state/bedboard"
//	log_level = "info"
//
// All fields are optional. An empty feed_url lets the housing client use its
// built-in default. interval_minutes is clamped to [1, 30] and a non-positive
// timeout falls back to 10 seconds. Tilde expansion is applied to log_dir.
//
// # Environment
//
//   - BEDBOARD_FEED_URL
//   - BEDBOARD_INTERVAL_MINUTES
//   - BEDBOARD_LOG_LEVEL
//   - BEDBOARD_LOG_DIR
package config
