// Package simulator provides an in-memory telephony and connectivity
// platform for driving the connectivity observer without a device.
//
// A Platform implements observer.PermissionSource,
// observer.SubscriptionService and observer.NetworkService. Watcher
// callbacks are delivered on a single dispatcher goroutine, the way a
// platform looper would deliver them: never from inside a Register or
// Unregister call, and in the order the changes were made.
//
// Registering a watcher queues a delivery of the current value (the active
// data subscription, the SIM's override type, or each known network whose
// capabilities match). Deliveries to watchers that were unregistered in the
// meantime are dropped.
//
// Use Sync to wait until all queued deliveries have run.
package simulator
