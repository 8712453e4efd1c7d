package repositories

import (
	"github.com/dgraph-io/badger/v4"
)

// OpenBadger opens the Badger database at path. An empty path opens an
// in-memory database. A nil logger silences badger.
func OpenBadger(path string, logger badger.Logger) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(logger).
		WithNumVersionsToKeep(1)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	return badger.Open(opts)
}
