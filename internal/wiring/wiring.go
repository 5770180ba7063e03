// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ripple/internal/adapters/artifact"
	_ "go.trai.ch/ripple/internal/adapters/config"
	_ "go.trai.ch/ripple/internal/adapters/git"
	_ "go.trai.ch/ripple/internal/adapters/logger"
	_ "go.trai.ch/ripple/internal/adapters/telemetry"
	_ "go.trai.ch/ripple/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "go.trai.ch/ripple/internal/app"
	_ "go.trai.ch/ripple/internal/engine/affected"
)
