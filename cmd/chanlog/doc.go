// Package main hosts the chanlog CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the logging runtime for inspection
// and demonstration: it renders the severity scale, runs a concurrent demo
// workload through nested scopes and timers, and scaffolds configuration
// files. It centralizes configuration resolution and logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
