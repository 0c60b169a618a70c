package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"cabbooking/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var bookingCols = []string{"customerId", "customerName", "cabId", "pickupLocation", "dropLocation", "distance", "fare"}

func TestBookingRepositoryInsert(t *testing.T) {
	_, bookings, mock := newMock(t)
	b := models.Booking{
		CustomerID:     "CUST-1",
		CustomerName:   "Alice",
		CabID:          "C1",
		PickupLocation: "A",
		DropLocation:   "B",
		Distance:       12,
		Fare:           120,
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Bookings (customerId, customerName, cabId, pickupLocation, dropLocation, distance, fare) VALUES (?, ?, ?, ?, ?, ?, ?)")).
		WithArgs("CUST-1", "Alice", "C1", "A", "B", 12.0, 120.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := bookings.Insert(context.Background(), b); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepositoryGetByCustomerID(t *testing.T) {
	_, bookings, mock := newMock(t)
	query := "SELECT customerId, customerName, cabId, pickupLocation, dropLocation, distance, fare FROM Bookings WHERE customerId"
	mock.ExpectQuery(query).WithArgs("CUST-1").
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow("CUST-1", "Alice", "C1", "A", "B", 12.0, 120.0))
	mock.ExpectQuery(query).WithArgs("CUST-404").
		WillReturnRows(sqlmock.NewRows(bookingCols))

	b, err := bookings.GetByCustomerID(context.Background(), "CUST-1")
	if err != nil {
		t.Fatalf("GetByCustomerID error: %v", err)
	}
	if b.CabID != "C1" || b.Fare != 120 {
		t.Fatalf("unexpected booking %+v", b)
	}

	if _, err := bookings.GetByCustomerID(context.Background(), "CUST-404"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestBookingRepositoryList(t *testing.T) {
	_, bookings, mock := newMock(t)
	mock.ExpectQuery("SELECT customerId, customerName, cabId, pickupLocation, dropLocation, distance, fare FROM Bookings").
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow("CUST-1", "Alice", "C1", "A", "B", 12.0, 120.0).
			AddRow("CUST-2", "Bob", "C2", "X", "X", 1.0, 20.0))

	got, err := bookings.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[1].CustomerName != "Bob" {
		t.Fatalf("unexpected bookings %+v", got)
	}
}

func TestRepositoriesWithoutDB(t *testing.T) {
	if _, err := (CabRepository{}).CountByID(context.Background(), "C1"); err == nil {
		t.Fatalf("expected error without a database handle")
	}
	if err := (BookingRepository{}).Insert(context.Background(), models.Booking{}); err == nil {
		t.Fatalf("expected error without a database handle")
	}
}
