package progrock_test

import (
	"context"
	"errors"
	"testing"

	"go.trai.ch/ripple/internal/adapters/telemetry/progrock"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()

	_, vertex := recorder.Record(context.Background(), "resolve affected")
	vertex.Complete(nil)

	_, failed := recorder.Record(context.Background(), "load workspace")
	failed.Complete(errors.New("boom"))

	if err := recorder.Close(); err != nil {
		t.Errorf("failed to close recorder: %v", err)
	}
}
