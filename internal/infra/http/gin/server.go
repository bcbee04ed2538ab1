package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"smarthost/internal/infra/config"
	"smarthost/internal/infra/obs"
)

type HostHTTP interface {
	List(c *gin.Context)
	Create(c *gin.Context)
}

type PropertyHTTP interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	ListRooms(c *gin.Context)
	CreateRoom(c *gin.Context)
}

type BookingHTTP interface {
	List(c *gin.Context)
	Create(c *gin.Context)
}

type Handlers struct {
	Hosts      HostHTTP
	Properties PropertyHTTP
	Bookings   BookingHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewRouter(obsMW, health, h),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// NewRouter builds the engine without touching the global gin mode.
func NewRouter(obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Idempotency-Key", obs.RequestIDHeader},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			obs.RequestIDHeader,
		},
		MaxAge: 12 * time.Hour,
	}))

	registerSwaggerRoutes(router)

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	if h.Hosts != nil {
		router.GET("/hosts", h.Hosts.List)
		router.POST("/hosts", h.Hosts.Create)
	}
	if h.Properties != nil {
		router.GET("/properties", h.Properties.List)
		router.POST("/properties", h.Properties.Create)
		router.GET("/properties/:id/rooms", h.Properties.ListRooms)
		router.POST("/properties/:id/rooms", h.Properties.CreateRoom)
	}
	if h.Bookings != nil {
		router.GET("/bookings", h.Bookings.List)
		router.POST("/bookings", h.Bookings.Create)
	}
	return router
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug", "dev", "local":
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
