package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"go.trai.ch/ripple/internal/app"
	_ "go.trai.ch/ripple/internal/wiring"
)

// TestGraftGraph_Executes builds the full component graph. Node Run
// functions only construct adapters, so this exercises every registration
// and dependency edge without touching a repository.
func TestGraftGraph_Executes(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	if err != nil {
		t.Fatalf("failed to execute the component graph: %v", err)
	}

	if components.App == nil {
		t.Error("expected a constructed App")
	}
	if components.Logger == nil {
		t.Error("expected a constructed Logger")
	}
}
