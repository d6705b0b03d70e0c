package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"pinelodge/internal/infra/config"
	"pinelodge/internal/infra/obs"
)

type BookingHTTP interface {
	Create(c *gin.Context)
	Lookup(c *gin.Context)
	Cancel(c *gin.Context)
	AttachMessage(c *gin.Context)
	MyBookings(c *gin.Context)
}

type AvailabilityHTTP interface {
	OccupiedDates(c *gin.Context)
}

type PromoHTTP interface {
	Validate(c *gin.Context)
}

type ChangeRequestHTTP interface {
	Submit(c *gin.Context)
	List(c *gin.Context)
}

type VisitorHTTP interface {
	Record(c *gin.Context)
}

type CabinHTTP interface {
	List(c *gin.Context)
	Update(c *gin.Context)
	GetSettings(c *gin.Context)
	UpdateSettings(c *gin.Context)
}

type Handlers struct {
	Booking            BookingHTTP
	Availability       AvailabilityHTTP
	Promo              PromoHTTP
	ChangeRequest      ChangeRequestHTTP
	Visitor            VisitorHTTP
	Cabin              CabinHTTP
	IdentityMiddleware gin.HandlerFunc
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Verified-Email", "X-Verified-Role", "X-Gateway-Token"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))
	if h.IdentityMiddleware != nil {
		router.Use(h.IdentityMiddleware)
	}

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Booking != nil {
		api.POST("/bookings", h.Booking.Create)
		api.GET("/bookings/:reference", h.Booking.Lookup)
		api.POST("/bookings/:reference/cancel", h.Booking.Cancel)
		api.POST("/bookings/:reference/message", h.Booking.AttachMessage)
		api.GET("/me/bookings", h.Booking.MyBookings)
	}
	if h.ChangeRequest != nil {
		api.POST("/bookings/:reference/date-change", h.ChangeRequest.Submit)
		api.GET("/bookings/:reference/date-change", h.ChangeRequest.List)
	}
	if h.Availability != nil {
		api.GET("/cabins/:name/occupied-dates", h.Availability.OccupiedDates)
	}
	if h.Promo != nil {
		api.GET("/promos/validate", h.Promo.Validate)
	}
	if h.Visitor != nil {
		api.POST("/visits", h.Visitor.Record)
	}
	if h.Cabin != nil {
		api.GET("/cabins", h.Cabin.List)
		api.PUT("/cabins/:name", h.Cabin.Update)
		api.GET("/settings", h.Cabin.GetSettings)
		api.PUT("/settings", h.Cabin.UpdateSettings)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
