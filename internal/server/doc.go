// Package server wires and runs the application's HTTP listeners.
//
// It owns the lifecycle of the API and frontend servers and of the
// background workers: startup, signal handling and graceful shutdown.
package server
