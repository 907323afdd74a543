package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eauctionbuyer/internal/models"
)

const buyerColumns = `id, first_name, last_name, address, city, state, pin, phone, email`

type PostgresBuyerRepository struct {
	db *sql.DB
}

func NewPostgresBuyerRepository(db *sql.DB) *PostgresBuyerRepository {
	return &PostgresBuyerRepository{db: db}
}

func scanBuyer(row interface{ Scan(dest ...any) error }) (models.Buyer, error) {
	var b models.Buyer
	err := row.Scan(&b.ID, &b.FirstName, &b.LastName, &b.Address,
		&b.City, &b.State, &b.Pin, &b.Phone, &b.Email)
	return b, err
}

func (r *PostgresBuyerRepository) FindByEmail(ctx context.Context, email string) (*models.Buyer, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+buyerColumns+` FROM buyer_info WHERE email = $1`, email)
	b, err := scanBuyer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PostgresBuyerRepository) FindAllByID(ctx context.Context, ids []int64) ([]models.Buyer, error) {
	if len(ids) == 0 {
		return []models.Buyer{}, nil
	}
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	q := `SELECT ` + buyerColumns + ` FROM buyer_info WHERE id IN (` +
		strings.Join(placeholders, ", ") + `) ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]models.Buyer, 0, len(ids))
	for rows.Next() {
		b, err := scanBuyer(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *PostgresBuyerRepository) Save(ctx context.Context, b *models.Buyer) error {
	const upsertQ = `
	  INSERT INTO buyer_info (` + buyerColumns + `)
	       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	  ON CONFLICT (id) DO UPDATE
	        SET first_name = EXCLUDED.first_name,
	            last_name  = EXCLUDED.last_name,
	            address    = EXCLUDED.address,
	            city       = EXCLUDED.city,
	            state      = EXCLUDED.state,
	            pin        = EXCLUDED.pin,
	            phone      = EXCLUDED.phone,
	            email      = EXCLUDED.email`

	_, err := r.db.ExecContext(ctx, upsertQ,
		b.ID, b.FirstName, b.LastName, b.Address, b.City, b.State, b.Pin, b.Phone, b.Email)
	if isUniqueViolation(err) {
		return fmt.Errorf("buyer email %s: %w", b.Email, ErrDuplicate)
	}
	return err
}

func (r *PostgresBuyerRepository) MaxID(ctx context.Context) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT coalesce(max(id), 0) FROM buyer_info`).Scan(&id)
	return id, err
}
