package ports

import "context"

// Telemetry records one vertex per resolution phase so long runs on large
// universes stay observable.
type Telemetry interface {
	// Record starts recording a new vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded phase.
type Vertex interface {
	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
}
