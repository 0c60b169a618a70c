package api

import (
	stdhttp "net/http"

	intconfig "cabbooking/internal/config"
	h "cabbooking/internal/http/handlers"
	"cabbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logrus.WithError(err).Warn("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		cabs := api.Group("/cabs")
		cabs.GET("", h.ListCabs)
		cabs.POST("", h.CreateCab)

		bookings := api.Group("/bookings")
		bookings.GET("", h.ListBookings)
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:customerId", h.GetBooking)
		bookings.GET("/:customerId/receipt", h.GetBookingReceiptPDF)
	}

	return r
}
