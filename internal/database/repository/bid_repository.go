package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eauctionbuyer/internal/models"
)

const bidColumns = `id, product_id, bid_amount, buyer_id`

type PostgresBidRepository struct {
	db *sql.DB
}

func NewPostgresBidRepository(db *sql.DB) *PostgresBidRepository {
	return &PostgresBidRepository{db: db}
}

func scanBid(row interface{ Scan(dest ...any) error }) (models.Bid, error) {
	var b models.Bid
	err := row.Scan(&b.ID, &b.ProductID, &b.BidAmount, &b.BuyerID)
	return b, err
}

func (r *PostgresBidRepository) list(ctx context.Context, q string, args ...any) ([]models.Bid, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]models.Bid, 0)
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *PostgresBidRepository) FindAll(ctx context.Context) ([]models.Bid, error) {
	return r.list(ctx, `SELECT `+bidColumns+` FROM bid_info ORDER BY id`)
}

func (r *PostgresBidRepository) FindByProductID(ctx context.Context, productID int64) ([]models.Bid, error) {
	return r.list(ctx, `SELECT `+bidColumns+` FROM bid_info WHERE product_id = $1 ORDER BY id`, productID)
}

func (r *PostgresBidRepository) FindByBuyerID(ctx context.Context, buyerID int64) ([]models.Bid, error) {
	return r.list(ctx, `SELECT `+bidColumns+` FROM bid_info WHERE buyer_id = $1 ORDER BY id`, buyerID)
}

func (r *PostgresBidRepository) FindByProductAndBuyer(ctx context.Context, productID, buyerID int64) (*models.Bid, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bidColumns+` FROM bid_info WHERE product_id = $1 AND buyer_id = $2`,
		productID, buyerID)
	b, err := scanBid(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PostgresBidRepository) Insert(ctx context.Context, b *models.Bid) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bid_info (`+bidColumns+`) VALUES ($1, $2, $3, $4)`,
		b.ID, b.ProductID, b.BidAmount, b.BuyerID)
	if isUniqueViolation(err) {
		return fmt.Errorf("bid for product %d by buyer %d: %w", b.ProductID, b.BuyerID, ErrDuplicate)
	}
	return err
}

// UpdateAmount is a single UPDATE ... RETURNING, so concurrent amendments of
// the same pair serialize on the row lock and each one is applied whole.
func (r *PostgresBidRepository) UpdateAmount(ctx context.Context, productID, buyerID int64, amount string) (*models.Bid, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE bid_info SET bid_amount = $1
		  WHERE product_id = $2 AND buyer_id = $3
		  RETURNING `+bidColumns,
		amount, productID, buyerID)
	b, err := scanBid(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PostgresBidRepository) MaxID(ctx context.Context) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT coalesce(max(id), 0) FROM bid_info`).Scan(&id)
	return id, err
}
