// Package app loads configuration and wires application dependencies for the
// CLI and the daemon.
//
// It builds the logger, metrics registry, split service, allocator and web
// server from Config, exposing them via the Wire struct.
package app
