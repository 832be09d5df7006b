// Package workers runs the background jobs of the server next to its
// HTTP listeners.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
