// Package ports defines the interfaces (contracts) that adapters must
// implement. Application code depends only on these interfaces, never on
// concrete implementations.
package ports

// Watcher monitors the asset directory for changes so a redeployed bundle
// shows up in the process log. The adapter (fsnotify) must debounce rapid
// events before invoking onChange. Only one Watch call should be active at
// a time.
type Watcher interface {
	// Watch starts monitoring assetRoot recursively. onChange is called with
	// the absolute path of each changed file. The callback may be invoked
	// from any goroutine. Returns an error if the directory doesn't exist or
	// permissions are insufficient.
	Watch(assetRoot string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
