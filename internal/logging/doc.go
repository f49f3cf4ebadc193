// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

// Package logging provides centralized structured logging built on zerolog.
//
// The package keeps one process-wide logger configured from the
// logging section of the application config. API handlers, the
// record store and the ingest pipeline all log through it so every line
// carries the same shape.
//
// # Usage
//
//	logging.Init(logging.Config{Level: "debug", Format: "console"})
//	logging.Info().Str("pwsid", id).Int("violations", n).Msg("System loaded")
//
// Always terminate an event chain with Msg or Send; an unterminated
// chain is never written.
//
// # Request Context
//
// The API middleware stores a request ID in the request context.
// Ctx returns a logger carrying it:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Unable to fetch violations")
//
// # slog Adapter
//
// Suture and other slog consumers receive NewSlogLogger, which routes
// their records into the same zerolog output.
//
// # Output Formats
//
// JSON (production):
//
//	{"level":"info","time":"2026-03-01T10:30:00Z","message":"HTTP server listening","port":8080}
//
// Console (development):
//
//	10:30:00 INF HTTP server listening port=8080
package logging
