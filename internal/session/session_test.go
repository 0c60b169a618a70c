package session

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"cabbooking/internal/repositories"
	"cabbooking/internal/services"
	"cabbooking/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
)

func newSession(t *testing.T, input string) (Session, *bytes.Buffer, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	out := &bytes.Buffer{}
	cabRepo := repositories.CabRepository{DB: db}
	return Session{
		In:   strings.NewReader(input),
		Out:  out,
		Cabs: services.CabService{CabRepo: cabRepo},
		Bookings: services.BookingService{
			CabRepo:       cabRepo,
			BookingRepo:   repositories.BookingRepository{DB: db},
			NewCustomerID: func() string { return "CUST-7" },
		},
	}, out, mock
}

func TestSessionAddAndBook(t *testing.T) {
	input := strings.Join([]string{
		"1", "C1", "Economy",
		"2", "Alice", "economy", "A", "B",
		"3",
	}, "\n") + "\n"
	s, out, mock := newSession(t, input)

	distance := utils.EstimateDistance("A", "B")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM Cabs WHERE cabId = ?")).WithArgs("C1").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(0))
	mock.ExpectExec("INSERT INTO Cabs").WithArgs("C1", "Economy").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT cabId, cabType FROM Cabs WHERE cabType").WithArgs("Economy").
		WillReturnRows(sqlmock.NewRows([]string{"cabId", "cabType"}).AddRow("C1", "Economy"))
	mock.ExpectExec("INSERT INTO Bookings").
		WithArgs("CUST-7", "Alice", "C1", "A", "B", distance, distance*10.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Cab added successfully: C1 (Economy)",
		"Booking confirmed!",
		"Customer ID: CUST-7",
		"Cab ID: C1",
		"Fare: " + utils.FormatMoney(distance*10.0),
		"Exiting... Thank you!",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionReportsErrorsAndContinues(t *testing.T) {
	input := strings.Join([]string{
		"9",
		"abc",
		"1", "C1", "Economy",
		"2", "Bob", "Luxury", "X", "Y",
		"3",
	}, "\n") + "\n"
	s, out, mock := newSession(t, input)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM Cabs WHERE cabId = ?")).WithArgs("C1").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(1))
	mock.ExpectQuery("SELECT cabId, cabType FROM Cabs WHERE cabType").WithArgs("Luxury").
		WillReturnRows(sqlmock.NewRows([]string{"cabId", "cabType"}))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	got := out.String()
	if strings.Count(got, "Invalid choice. Try again.") != 2 {
		t.Fatalf("expected two invalid choice lines:\n%s", got)
	}
	if !strings.Contains(got, "Cab with ID C1 already exists in the database.") {
		t.Fatalf("missing duplicate cab line:\n%s", got)
	}
	if !strings.Contains(got, "No cab available of type Luxury. Try again.") {
		t.Fatalf("missing no cab line:\n%s", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionEOFExits(t *testing.T) {
	s, out, _ := newSession(t, "1\nC1\n")
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !strings.Contains(out.String(), "Exiting... Thank you!") {
		t.Fatalf("expected exit line on EOF:\n%s", out.String())
	}
}

func TestSessionCancelledContext(t *testing.T) {
	s, _, _ := newSession(t, "3\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Run(ctx); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSessionExitReportsClose(t *testing.T) {
	cases := []struct {
		name  string
		close func() error
		want  string
	}{
		{"closed", func() error { return nil }, "Database connection closed.\nExiting... Thank you!"},
		{"close error", func() error { return errors.New("bad conn") }, "Error closing database connection: bad conn\nExiting... Thank you!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, out, _ := newSession(t, "3\n")
			calls := 0
			s.Close = func() error { calls++; return tc.close() }
			if err := s.Run(context.Background()); err != nil {
				t.Fatalf("Run error: %v", err)
			}
			if calls != 1 {
				t.Fatalf("Close called %d times, want 1", calls)
			}
			if !strings.Contains(out.String(), tc.want) {
				t.Fatalf("missing %q in output:\n%s", tc.want, out.String())
			}
		})
	}
}
