package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"go.trai.ch/ripple/internal/adapters/telemetry"
	"go.trai.ch/ripple/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Telemetry = (*telemetry.NoOpRecorder)(nil)
	var _ ports.Vertex = (*telemetry.NoOpVertex)(nil)
}

func TestNoOpRecorder(t *testing.T) {
	recorder := telemetry.NewNoOpRecorder()

	ctx, vertex := recorder.Record(context.Background(), "scan workspace")
	if ctx == nil {
		t.Fatal("expected a context")
	}
	if vertex == nil {
		t.Fatal("expected a vertex")
	}

	vertex.Complete(nil)
	vertex.Complete(errors.New("already done"))

	if err := recorder.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
