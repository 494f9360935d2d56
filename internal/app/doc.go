// Package app provides the orchestration layer for bedboard.
//
// # Overview
//
// This package wires together configuration, preferences, logging, the
// housing feed client, the fetch session and the UI. It is the composition
// root where all dependencies are initialized and connected.
//
// # Startup
//
//  1. Load config from ~/.config/bedboard/config.toml, .env and the environment
//  2. Load saved preferences and overlay command-line filter flags
//  3. Open the session log and build the housing client
//  4. Create the shared state.Store and a Session writing into it
//  5. Either fetch once and print a report, or start the session and the TUI
//
// # Session
//
// A Session owns every timer. Its poll loop fetches immediately and then once
// per interval; changing the interval on a running session fetches at once
// and re-arms the timer. All fetches, manual ones included, pass through a
// one-per-second rate limiter and are numbered so that a slow response
// overtaken by a newer fetch is discarded. Once a record timestamp has been
// seen, a second loop recomputes the elapsed-time string every second.
//
// Stop cancels both loops and any in-flight fetch and waits for the
// goroutines to exit.
//
// # Error Handling
//
// Fatal errors returned from Run:
//   - Config file present but invalid, or a malformed environment override
//   - Log file cannot be created
//   - Feed URL cannot be parsed
//   - In -once mode, a failed fetch
//
// Recoverable errors (recorded in the store, polling continues):
//   - Non-2xx feed responses
//   - Network failures and timeouts
//   - Undecodable response bodies
package app
