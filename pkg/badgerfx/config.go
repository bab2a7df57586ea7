package badgerfx

import (
	"time"

	"github.com/dgraph-io/badger/v4"
)

type Config struct {
	// Path to the BadgerDB data directory
	Dir string
	// Keep everything in memory; Dir is ignored
	InMemory bool
	// Value log GC period. Zero disables GC.
	GCInterval time.Duration
}

func (c Config) Build() badger.Options {
	if c.InMemory {
		return badger.DefaultOptions("").WithInMemory(true)
	}

	return badger.DefaultOptions(c.Dir)
}
