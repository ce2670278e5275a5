// Package telemetry turns exact.Reporter events into zerolog log lines and
// Prometheus metrics for the tww command.
package telemetry
