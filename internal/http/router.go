package api

import (
	"log"
	stdhttp "net/http"

	intconfig "buspass/internal/config"
	h "buspass/internal/http/handlers"
	"buspass/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators the router cannot build from the environment alone.
type Deps struct {
	App h.AppHandlers
}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins), middleware.Metrics())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"code":   "not_found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/health", h.Health)
	r.GET("/db-check", h.DBCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Booking API
	r.GET("/", h.Root)
	r.GET("/passes", h.GetPasses)
	r.POST("/book-pass", h.BookPass)

	bookings := r.Group("/bookings")
	bookings.GET("", h.GetBookings)
	bookings.GET("/:id", h.GetBookingByID)
	bookings.GET("/:id/pass", h.GetBookingPassPDF)

	reports := r.Group("/reports")
	reports.GET("/bookings.xlsx", h.ExportBookingsXLSX)

	// Applicant flow
	deps.App.Mount(r.Group("/app"))

	return r
}
