package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cabbooking/internal/domain"
	"cabbooking/internal/domain/models"
	"cabbooking/internal/repositories"
	"cabbooking/internal/utils"
)

type BookingService struct {
	CabRepo     repositories.CabRepository
	BookingRepo repositories.BookingRepository
	RequestID   string
	// NewCustomerID overrides customer id generation; nil uses utils.NewCustomerID.
	NewCustomerID func() string
}

func (s BookingService) customerID() string {
	if s.NewCustomerID != nil {
		return s.NewCustomerID()
	}
	return utils.NewCustomerID()
}

// BookCab assigns the lowest-id cab of the requested category and records the trip.
// With no cab in the category it returns a NotFoundError wrapping ErrNoCabAvailable and writes nothing.
func (s BookingService) BookCab(ctx context.Context, customerName, category, pickup, drop string) (models.Booking, error) {
	customerID := s.customerID()
	cat := utils.NormalizeCategory(category)

	cab, ok, err := s.CabRepo.FirstByCategory(ctx, cat)
	if err != nil {
		utils.LogFailure(s.RequestID, "booking", "book", err)
		return models.Booking{}, domain.StoreError("Error while booking cab", err)
	}
	if !ok {
		return models.Booking{}, domain.NotFoundError{
			Resource: "cab",
			Msg:      fmt.Sprintf("No cab available of type %s. Try again.", cat),
			Err:      domain.ErrNoCabAvailable,
		}
	}

	// Labels are hashed, so spacing must not change the distance.
	pickup, drop = utils.NormalizeSpace(pickup), utils.NormalizeSpace(drop)
	distance := utils.EstimateDistance(pickup, drop)
	booking := models.Booking{
		CustomerID:     customerID,
		CustomerName:   utils.NormalizeSpace(customerName),
		CabID:          cab.ID,
		PickupLocation: pickup,
		DropLocation:   drop,
		Distance:       distance,
		Fare:           distance * utils.RateFor(string(cat)),
	}

	if err := s.BookingRepo.Insert(ctx, booking); err != nil {
		utils.LogFailure(s.RequestID, "booking", "book", err)
		return models.Booking{}, domain.StoreError("Error while booking cab", err)
	}

	utils.LogEvent(s.RequestID, "booking", "book",
		fmt.Sprintf("customer_id=%s cab_id=%s distance=%.0f fare=%.2f", booking.CustomerID, booking.CabID, booking.Distance, booking.Fare))
	return booking, nil
}

func (s BookingService) GetBooking(ctx context.Context, customerID string) (models.Booking, error) {
	customerID = utils.TrimOrEmpty(customerID)
	if customerID == "" {
		return models.Booking{}, domain.ValidationError{Field: "customer_id", Msg: "must not be empty"}
	}
	b, err := s.BookingRepo.GetByCustomerID(ctx, customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return models.Booking{}, domain.StoreError("Error loading booking", err)
	}
	return b, nil
}

func (s BookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.List(ctx)
	if err != nil {
		return nil, domain.StoreError("Error listing bookings", err)
	}
	return bookings, nil
}
