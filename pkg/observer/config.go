package observer

import (
	"errors"
	"log/slog"

	"github.com/cellwatch/cellwatch-go/pkg/log"
)

// Configuration errors.
var (
	ErrNoPermissionSource    = errors.New("observer: permission source is required")
	ErrNoSubscriptionService = errors.New("observer: subscription service is required")
	ErrNoNetworkService      = errors.New("observer: network service is required")
)

// Config configures an Observer.
type Config struct {
	// Permissions is queried on Start and Stop.
	Permissions PermissionSource

	// Subscriptions provides the data-subscription and override watchers.
	Subscriptions SubscriptionService

	// Network provides the capabilities watcher.
	Network NetworkService

	// Request selects the networks reported to the capabilities watcher.
	Request NetworkRequest

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// EventLogger receives structured observer events.
	// If nil, events are discarded.
	EventLogger log.Logger
}

// DefaultConfig returns a Config with sensible defaults. The platform
// collaborators still have to be set.
func DefaultConfig() Config {
	return Config{
		Request:     DefaultCellularRequest(),
		EventLogger: log.NoopLogger{},
	}
}

func (c Config) validate() error {
	if c.Permissions == nil {
		return ErrNoPermissionSource
	}
	if c.Subscriptions == nil {
		return ErrNoSubscriptionService
	}
	if c.Network == nil {
		return ErrNoNetworkService
	}
	return nil
}
