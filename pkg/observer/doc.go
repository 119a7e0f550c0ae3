// Package observer implements the connectivity observer for cellwatch.
//
// The Observer watches three platform channels and folds them into one
// immutable Status:
//   - the data-subscription watcher (primary), which fires when the platform
//     reassigns which SIM carries mobile data,
//   - the override watcher (secondary), bound to the carrier handle of the
//     SIM that currently carries data and reporting the radio override type,
//   - the capabilities watcher, which reports metered flags and link
//     bandwidth of the active cellular network.
//
// # Rebinding
//
// The secondary watcher is bound if and only if the current data
// subscription is valid. When the primary watcher reports a new
// subscription, the old secondary watcher is detached before the new one is
// attached; both happen inside the observer's critical section. Moving to
// the invalid subscription resets the override type to NONE. Reports of the
// subscription that is already bound are ignored and not published.
//
// # Lifecycle
//
// Start and Stop bracket one observing session. Start without the
// READ_PHONE_STATE permission publishes a status with HasPermission=false
// and attaches nothing. Stop detaches everything and is idempotent.
// Callbacks that arrive after Stop, or that belong to an earlier session or
// an earlier binding, are dropped.
//
// # Publishing
//
// Every mutation builds a complete Status, stores it atomically and then
// hands it to the StatusListener outside the state lock. The listener sees
// statuses in publish order. It may call Status and Stop, but must not call
// Start.
package observer
