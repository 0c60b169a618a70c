package handlers

import (
	"net/http"

	"cabbooking/internal/domain/models"
	"cabbooking/internal/http/middleware"
	"cabbooking/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/cabs
func ListCabs(c *gin.Context) {
	svc := services.CabService{RequestID: middleware.GetRequestID(c)}
	cabs, err := svc.ListCabs(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cabs})
}

// POST /api/cabs {"cab_id":"C1","cab_type":"Economy"}
func CreateCab(c *gin.Context) {
	var req models.CabRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.CabService{RequestID: middleware.GetRequestID(c)}
	cab, err := svc.RegisterCab(c.Request.Context(), req.ID, req.Category)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"cab": cab, "rate_per_km": cab.RatePerKm()})
}
