package server

import "context"

// Server defines the lifecycle contract of the process.
//
// RunServer blocks until a termination signal arrives or a listener fails,
// then shuts everything down gracefully.
type Server interface {
	RunServer() error
	Shutdown()
}

// BackgroundRunner is satisfied by the worker aggregate.
type BackgroundRunner interface {
	Run(ctx context.Context)
}
