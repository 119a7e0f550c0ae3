// Package lifecycle maps host foreground transitions onto an observer.
//
// A host (an app screen, a daemon, the demo CLI) goes through
// Create, then any number of Resume/Pause pairs, then Destroy. Observation
// runs only while the host is resumed: Resume starts the observer, Pause and
// Destroy stop it. The renderer is attached as the observer's listener in
// Create and only ever sees statuses through it, one at a time.
package lifecycle
