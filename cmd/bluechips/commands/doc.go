// Package commands defines the bluechips CLI and wires dependencies for subcommands.
//
// Commands
//
//   - split   Split an amount across share expressions
//   - eval    Evaluate a single share expression
//   - render  Fill the -calc elements of a saved HTML page
//   - even    Split an amount evenly to the cent
//
// # Implementation
//
// The root command loads the YAML config (--config), applies --log-level and
// builds the dependency graph (logger, split service, allocator) before any
// subcommand runs, so handlers share one app context.
package commands
