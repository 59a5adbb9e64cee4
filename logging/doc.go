// Package logging provides the minimal Logger interface used across stockmesh
// and adapters over log/slog.
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping *slog.Logger
//   - NoOpLogger for silent operation (tests, library use)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	sess := session.New(func(o *session.Options) { o.Logger = logger })
package logging
