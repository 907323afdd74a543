package bidaudit

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"eauctionbuyer/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	stream       = "bids_audit_stream"
	streamMaxLen = 100_000

	ActionPlaced  = "placed"
	ActionAmended = "amended"
)

// Event is one bid mutation as it travels through the audit stream.
type Event struct {
	EventID string
	Action  string
	Bid     models.Bid
	At      time.Time
}

func NewEvent(action string, b models.Bid) Event {
	return Event{
		EventID: uuid.NewString(),
		Action:  action,
		Bid:     b,
		At:      time.Now().UTC(),
	}
}

type IAuditLog interface {
	Publish(ctx context.Context, e Event) error
	History(ctx context.Context, bidID int64) ([]models.AuditEntry, error)
}

type auditLog struct {
	rdc *redis.Client
	db  *sql.DB
}

func NewAuditLog(rdc *redis.Client, db *sql.DB) IAuditLog {
	return &auditLog{rdc: rdc, db: db}
}

func xaddArgs(e Event) *redis.XAddArgs {
	return &redis.XAddArgs{
		Stream: stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: []any{
			"eid", e.EventID,
			"action", e.Action,
			"bid", strconv.FormatInt(e.Bid.ID, 10),
			"product", strconv.FormatInt(e.Bid.ProductID, 10),
			"buyer", strconv.FormatInt(e.Bid.BuyerID, 10),
			"amount", e.Bid.BidAmount,
			"at", strconv.FormatInt(e.At.UnixMilli(), 10),
		},
	}
}

// Publish appends e to the stream; the consumer started by Run persists it.
func (a *auditLog) Publish(ctx context.Context, e Event) error {
	if err := a.rdc.XAdd(ctx, xaddArgs(e)).Err(); err != nil {
		return fmt.Errorf("publish audit %s: %w", e.EventID, err)
	}
	return nil
}

func (a *auditLog) History(ctx context.Context, bidID int64) ([]models.AuditEntry, error) {
	const q = `SELECT id, event_id, action, bid_id, product_id, buyer_id, bid_amount, recorded_at
	             FROM bid_audit WHERE bid_id = $1
	            ORDER BY recorded_at, id`
	rows, err := a.db.QueryContext(ctx, q, bidID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]models.AuditEntry, 0)
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.ID, &e.EventID, &e.Action, &e.BidID,
			&e.ProductID, &e.BuyerID, &e.BidAmount, &e.RecordedAt); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
