package handlers

import (
	"net/http"

	"buspass/internal/http/middleware"
	"buspass/internal/services"

	"github.com/gin-gonic/gin"
)

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		Bookings:  bookingService(c),
		RequestID: middleware.GetRequestID(c),
	}
}

// GetBookingPassPDF renders the printable pass of a stored booking (inline).
func GetBookingPassPDF(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	body, filename, err := docsService(c).GenerateBookingPass(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, filename, body)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportBookingsXLSX downloads every booking as a spreadsheet with ID numbers masked.
func ExportBookingsXLSX(c *gin.Context) {
	docs := docsService(c)
	rows, err := docs.Bookings.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	body, err := docs.BookingsWorkbook(rows)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, body)
}
