package bidaudit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Run tails the audit stream and persists every entry into bid_audit. It
// starts from the beginning of the stream; event ids make replays harmless.
func Run(ctx context.Context, rdc *redis.Client, db *sql.DB) {
	go func() {
		lastID := "0-0"
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			// block up to 2 s for new entries
			res, err := rdc.XRead(ctx, &redis.XReadArgs{
				Streams: []string{stream, lastID},
				Count:   100,
				Block:   2000 * time.Millisecond,
			}).Result()
			if err != nil && !errors.Is(err, redis.Nil) {
				if ctx.Err() != nil {
					return
				}
				zap.L().Warn("bidaudit.xread", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}
			if len(res) == 0 || len(res[0].Messages) == 0 {
				continue
			}
			entries := res[0].Messages
			if err := persist(ctx, db, entries); err != nil {
				zap.L().Error("bidaudit.persist", zap.Error(err))
				time.Sleep(time.Second)
				continue // retry the same batch
			}
			lastID = entries[len(entries)-1].ID
		}
	}()
}

type row struct {
	eventID, action, amount string
	bidID, productID        int64
	buyerID                 int64
	at                      time.Time
}

func decode(m redis.XMessage) (row, error) {
	str := func(k string) string {
		s, _ := m.Values[k].(string)
		return s
	}
	num := func(k string) (int64, error) {
		v, err := strconv.ParseInt(str(k), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("field %s: %w", k, err)
		}
		return v, nil
	}

	var r row
	var err error
	r.eventID, r.action, r.amount = str("eid"), str("action"), str("amount")
	if r.eventID == "" || r.action == "" {
		return r, errors.New("missing eid or action")
	}
	if r.bidID, err = num("bid"); err != nil {
		return r, err
	}
	if r.productID, err = num("product"); err != nil {
		return r, err
	}
	if r.buyerID, err = num("buyer"); err != nil {
		return r, err
	}
	ms, err := num("at")
	if err != nil {
		return r, err
	}
	r.at = time.UnixMilli(ms).UTC()
	return r, nil
}

func persist(ctx context.Context, db *sql.DB, msgs []redis.XMessage) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	const ins = `INSERT INTO bid_audit (event_id, action, bid_id, product_id, buyer_id, bid_amount, recorded_at)
	             VALUES ($1, $2, $3, $4, $5, $6, $7)
	             ON CONFLICT (event_id) DO NOTHING`
	for _, m := range msgs {
		r, err := decode(m)
		if err != nil {
			// a malformed entry must not block the stream
			zap.L().Warn("bidaudit.decode", zap.String("id", m.ID), zap.Error(err))
			continue
		}
		if _, err := tx.ExecContext(ctx, ins,
			r.eventID, r.action, r.bidID, r.productID, r.buyerID, r.amount, r.at); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
