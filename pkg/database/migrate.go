package database

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

const seedZooInfo = `
	INSERT INTO zoo_info (zoo_id, name, location, description, capacity, start_time, end_time)
	SELECT 'zoo-1', 'City Zoo', 'Main Street', 'Home to animals from every continent.', '5000', '09:00', '17:00'
	WHERE NOT EXISTS (SELECT 1 FROM zoo_info)
`

// Migrate creates missing tables and seeds the single zoo_info row.
// Safe to run on every start.
func Migrate(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if _, err := db.Exec(ctx, seedZooInfo); err != nil {
		return fmt.Errorf("seed zoo info: %w", err)
	}
	return nil
}
