package repository

import (
	"context"
	"fmt"

	"zoo-admin/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// collect runs query and maps each row onto T by matching column names to
// db tags. Columns missing from the row leave the field at its zero value.
func collect[T any](ctx context.Context, db database.DBTX, log *zap.Logger, what, query string, args ...any) ([]*T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		log.Error("Failed to list "+what, zap.Error(err))
		return nil, fmt.Errorf("list %s: %w", what, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		log.Error("Failed to scan "+what+" rows", zap.Error(err))
		return nil, fmt.Errorf("scan %s rows: %w", what, err)
	}

	if items == nil {
		items = []*T{}
	}
	return items, nil
}

// execOne runs a write that must touch exactly the row identified by id.
func execOne(ctx context.Context, db database.DBTX, log *zap.Logger, action, what, id, query string, args ...any) error {
	result, err := db.Exec(ctx, query, args...)
	if err != nil {
		log.Error("Failed to "+action+" "+what,
			zap.Error(err),
			zap.String("id", id),
		)
		return fmt.Errorf("%s %s %s: %w", action, what, id, classify(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}

	return nil
}
