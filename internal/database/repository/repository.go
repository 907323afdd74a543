package repository

import (
	"context"
	"errors"

	"eauctionbuyer/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate is returned when a write violates a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

const pgUniqueViolation = "23505"

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

type BuyerRepository interface {
	// FindByEmail returns nil, nil when no buyer uses email.
	FindByEmail(ctx context.Context, email string) (*models.Buyer, error)
	FindAllByID(ctx context.Context, ids []int64) ([]models.Buyer, error)
	// Save inserts the buyer or rewrites the row with the same id.
	Save(ctx context.Context, buyer *models.Buyer) error
	MaxID(ctx context.Context) (int64, error)
}

type BidRepository interface {
	FindAll(ctx context.Context) ([]models.Bid, error)
	FindByProductID(ctx context.Context, productID int64) ([]models.Bid, error)
	FindByBuyerID(ctx context.Context, buyerID int64) ([]models.Bid, error)
	// FindByProductAndBuyer returns nil, nil when the pair has no bid.
	FindByProductAndBuyer(ctx context.Context, productID, buyerID int64) (*models.Bid, error)
	// Insert returns ErrDuplicate when the (product, buyer) pair already has a bid.
	Insert(ctx context.Context, bid *models.Bid) error
	// UpdateAmount atomically sets the amount of the pair's bid and returns the
	// updated row, or nil, nil when no bid matched.
	UpdateAmount(ctx context.Context, productID, buyerID int64, amount string) (*models.Bid, error)
	MaxID(ctx context.Context) (int64, error)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
