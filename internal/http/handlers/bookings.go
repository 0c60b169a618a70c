package handlers

import (
	"net/http"

	"cabbooking/internal/domain/models"
	"cabbooking/internal/http/middleware"
	"cabbooking/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/bookings
func ListBookings(c *gin.Context) {
	bookings, err := bookingService(c).ListBookings(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bookings})
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	b, err := bookingService(c).BookCab(c.Request.Context(), req.CustomerName, req.Category, req.PickupLocation, req.DropLocation)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// GET /api/bookings/:customerId
func GetBooking(c *gin.Context) {
	b, err := bookingService(c).GetBooking(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// GET /api/bookings/:customerId/receipt
func GetBookingReceiptPDF(c *gin.Context) {
	b, err := bookingService(c).GetBooking(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	pdf, filename, err := services.ReceiptService{RequestID: middleware.GetRequestID(c)}.PDF(b)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to render receipt")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
