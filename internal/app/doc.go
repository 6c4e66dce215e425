// Package app wires the relay server's dependencies.
//
// It builds the core services and the HTTP surface from Config, exposing
// them via the Wire struct for the daemon to run.
package app
