//go:build tools

package tools

// Pins the mockery version that generated pkg/observer/mocks.
// Run: go run github.com/vektra/mockery/v2 (reads .mockery.yaml).
import (
	_ "github.com/vektra/mockery/v2"
)
