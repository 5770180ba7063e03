package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/ripple/internal/adapters/telemetry/progrock"
	"go.trai.ch/ripple/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			// Progress rendering writes control sequences to the
			// terminal, so it is opt-in.
			if os.Getenv("RIPPLE_PROGRESS") != "" {
				return progrock.New(), nil
			}
			return NewNoOpRecorder(), nil
		},
	})
}
