// Package syncseq keeps the Redis id counters ahead of the ids already
// stored in Postgres.
package syncseq

import (
	"context"
	"fmt"
	"time"

	"eauctionbuyer/internal/sequence"

	"go.uber.org/zap"
)

const syncTimeout = 1500 * time.Millisecond

type MaxIDReader interface {
	MaxID(ctx context.Context) (int64, error)
}

// Source ties a sequence name to the table whose ids it issues.
type Source struct {
	Sequence string
	Table    MaxIDReader
}

// Run reconciles once before returning, then again every interval until ctx
// is done. Only the first pass is fatal to the caller.
func Run(ctx context.Context, seq sequence.ISequenceService, interval time.Duration, sources ...Source) error {
	if err := syncOnce(ctx, seq, sources); err != nil {
		return err
	}
	if interval <= 0 {
		return nil
	}

	tk := time.NewTicker(interval)
	go func() {
		defer tk.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tk.C:
				if err := syncOnce(ctx, seq, sources); err != nil {
					zap.L().Warn("syncseq_error", zap.Error(err))
				}
			}
		}
	}()
	return nil
}

func syncOnce(ctx context.Context, seq sequence.ISequenceService, sources []Source) error {
	ctx, cancel := context.WithTimeout(ctx, syncTimeout)
	defer cancel()

	for _, src := range sources {
		floor, err := src.Table.MaxID(ctx)
		if err != nil {
			return fmt.Errorf("max id for %s: %w", src.Sequence, err)
		}
		if floor == 0 {
			continue // empty table
		}
		if err := seq.EnsureFloor(ctx, src.Sequence, floor); err != nil {
			return err
		}
		zap.L().Debug("syncseq_floor", zap.String("sequence", src.Sequence), zap.Int64("floor", floor))
	}
	return nil
}
