package pg

import (
	"context"
	"fmt"
	"time"
)

// Probe asks the database for its clock and the name of the connected database.
func (s *Storage) Probe(ctx context.Context) (time.Time, string, error) {
	var (
		now    time.Time
		dbName string
	)
	if err := s.db.QueryRowContext(ctx, "SELECT now(), current_database()").Scan(&now, &dbName); err != nil {
		return time.Time{}, "", fmt.Errorf("db probe failed: %w", err)
	}
	return now, dbName, nil
}
