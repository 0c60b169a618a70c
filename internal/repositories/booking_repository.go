package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intconfig "cabbooking/internal/config"
	"cabbooking/internal/domain/models"
)

var errNoDB = errors.New("database not connected")

const bookingColumns = `customerId, customerName, cabId, pickupLocation, dropLocation, distance, fare`

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BookingRepository) Insert(ctx context.Context, b models.Booking) error {
	db := r.db()
	if db == nil {
		return errNoDB
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO Bookings (`+bookingColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.CustomerID, b.CustomerName, b.CabID, b.PickupLocation, b.DropLocation, b.Distance, b.Fare,
	)
	return err
}

// GetByCustomerID returns sql.ErrNoRows when no booking carries the id.
func (r BookingRepository) GetByCustomerID(ctx context.Context, customerID string) (models.Booking, error) {
	db := r.db()
	if db == nil {
		return models.Booking{}, errNoDB
	}
	var b models.Booking
	err := db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM Bookings WHERE customerId = ? LIMIT 1`,
		customerID,
	).Scan(&b.CustomerID, &b.CustomerName, &b.CabID, &b.PickupLocation, &b.DropLocation, &b.Distance, &b.Fare)
	if err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

func (r BookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	rows, err := db.QueryContext(ctx, `SELECT `+bookingColumns+` FROM Bookings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.CustomerID, &b.CustomerName, &b.CabID, &b.PickupLocation, &b.DropLocation, &b.Distance, &b.Fare); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
