package config

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS Cabs (
	cabId VARCHAR(64) NOT NULL PRIMARY KEY,
	cabType VARCHAR(32) NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS Bookings (
	customerId VARCHAR(64) NOT NULL,
	customerName VARCHAR(255) NOT NULL,
	cabId VARCHAR(64) NOT NULL,
	pickupLocation VARCHAR(255) NOT NULL,
	dropLocation VARCHAR(255) NOT NULL,
	distance DOUBLE NOT NULL,
	fare DOUBLE NOT NULL,
	KEY idx_bookings_customer (customerId)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the Cabs and Bookings tables when missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
