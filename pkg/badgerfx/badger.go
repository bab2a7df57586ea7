package badgerfx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

const SeekEnd = byte(0xFF)

const gcDiscardRatio = 0.5

func New(config Config, logger *zapLogger) (*badger.DB, error) {
	db, err := badger.Open(config.Build().WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %w", err)
	}

	return db, nil
}

// collectGarbage rewrites value log files until badger reports nothing left
// to reclaim, once per interval, until ctx is done.
func collectGarbage(ctx context.Context, db *badger.DB, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		rewritten := 0
		for {
			err := db.RunValueLogGC(gcDiscardRatio)
			if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
				break
			}
			if err != nil {
				logger.Error("value log GC failed", zap.Error(err))
				break
			}
			rewritten++
		}

		if rewritten > 0 {
			logger.Info("value log GC done", zap.Int("rewritten", rewritten))
		}
	}
}
