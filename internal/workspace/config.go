package workspace

import (
	"time"

	"github.com/apiarycd/assistd/internal/diff"
)

type Config struct {
	// Idle sessions are dropped after SessionTTL. Zero keeps them forever.
	SessionTTL    time.Duration
	DiffAlgorithm diff.Algorithm
}
