package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intconfig "cabbooking/internal/config"
	"cabbooking/internal/domain"
	"cabbooking/internal/domain/models"
)

type CabRepository struct {
	DB *sql.DB
}

func (r CabRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// CountByID returns how many Cabs rows carry the given id (0 or 1).
func (r CabRepository) CountByID(ctx context.Context, id string) (int, error) {
	db := r.db()
	if db == nil {
		return 0, errNoDB
	}
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Cabs WHERE cabId = ?`, id).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r CabRepository) Insert(ctx context.Context, cab models.Cab) error {
	db := r.db()
	if db == nil {
		return errNoDB
	}
	_, err := db.ExecContext(ctx, `INSERT INTO Cabs (cabId, cabType) VALUES (?, ?)`, cab.ID, string(cab.Category))
	return err
}

// FirstByCategory picks the cab with the lowest id in the category.
// ok is false when the category has no cabs.
func (r CabRepository) FirstByCategory(ctx context.Context, category domain.Category) (cab models.Cab, ok bool, err error) {
	db := r.db()
	if db == nil {
		return models.Cab{}, false, errNoDB
	}
	var cabType string
	err = db.QueryRowContext(ctx,
		`SELECT cabId, cabType FROM Cabs WHERE cabType = ? ORDER BY cabId LIMIT 1`,
		string(category),
	).Scan(&cab.ID, &cabType)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Cab{}, false, nil
	}
	if err != nil {
		return models.Cab{}, false, err
	}
	cab.Category = domain.Category(cabType)
	return cab, true, nil
}

func (r CabRepository) List(ctx context.Context) ([]models.Cab, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	rows, err := db.QueryContext(ctx, `SELECT cabId, cabType FROM Cabs ORDER BY cabId`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Cab{}
	for rows.Next() {
		var cab models.Cab
		var cabType string
		if err := rows.Scan(&cab.ID, &cabType); err != nil {
			return nil, fmt.Errorf("scan cab: %w", err)
		}
		cab.Category = domain.Category(cabType)
		out = append(out, cab)
	}
	return out, rows.Err()
}
