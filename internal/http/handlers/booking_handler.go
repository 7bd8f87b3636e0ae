package handlers

import (
	"net/http"

	"buspass/internal/domain/models"
	"buspass/internal/http/middleware"
	"buspass/internal/repositories"
	"buspass/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		BookingRepo: repositories.BookingRepo{},
		RequestID:   middleware.GetRequestID(c),
	}
}

// GetPasses lists the pass catalog rows stored in the database.
func GetPasses(c *gin.Context) {
	svc := services.PassService{
		PassRepo:  repositories.PassRepo{},
		RequestID: middleware.GetRequestID(c),
	}
	rows, err := svc.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// BookPass creates a booking from a strictly decoded JSON body.
func BookPass(c *gin.Context) {
	var req models.BookingRequest
	if !DecodeStrictJSON(c, &req) {
		return
	}

	id, err := bookingService(c).Create(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.BookingCreated{Message: "Booking successful", BookingID: id})
}

func GetBookings(c *gin.Context) {
	rows, err := bookingService(c).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func GetBookingByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := bookingService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
