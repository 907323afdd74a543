package schema

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"go.uber.org/zap"
)

//go:embed schema.sql
var ddl string

// Apply creates the buyer service tables when they are missing. Every
// statement is idempotent, so it runs on each boot.
func Apply(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	zap.L().Info("schema applied")
	return nil
}
