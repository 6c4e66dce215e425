// Package main runs the deaddrop relay daemon.
//
// Configuration comes from deaddrop.yaml (working directory or
// /etc/deaddrop) and DEADDROP_* environment variables, with sane defaults
// for every knob. All relay state is held in memory and lost on process
// exit; that is the point.
package main
