package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"factory-maintenance-backend/internal/mw"
	"factory-maintenance-backend/internal/store"
)

// RouterOptions carries the router's cross-cutting configuration.
type RouterOptions struct {
	JWTSecret string
	TokenTTL  time.Duration
	RateLimit rate.Limit
	RateBurst int
	CacheTTL  time.Duration
	WebPush   *webpush.Options
	Notifier  AlertNotifier
}

// NewRouter creates and configures a new Gin router. Read endpoints are open;
// mutating endpoints require a valid bearer token.
func NewRouter(s store.Store, opts RouterOptions) *gin.Engine {
	r := gin.Default()

	db := s.DB()
	handler := NewHandler(s, opts)

	if opts.RateLimit <= 0 {
		opts.RateLimit = rate.Limit(10)
	}
	if opts.RateBurst <= 0 {
		opts.RateBurst = 5
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = time.Minute
	}

	rateLimiter := mw.RateLimiter(opts.RateLimit, opts.RateBurst)

	cacheStore := cache.New(opts.CacheTTL, 2*opts.CacheTTL)
	caching := mw.Cache(cacheStore, opts.CacheTTL)

	auth := mw.RequireAuth(opts.JWTSecret)

	r.GET("/health", Health(db))
	r.POST("/auth/login", handler.Login)

	open := r.Group("/")
	open.Use(rateLimiter)
	{
		open.GET("/machines", ListMachines(db))
		open.GET("/personnel", ListPersonnel(db))
		open.GET("/faults", ListFaults(db))
		open.GET("/parts", ListParts(db))
		open.GET("/maintenance", ListMaintenance(db))
		open.GET("/schedules", ListSchedules(db))
		open.GET("/alerts", ListAlerts(db))
		open.GET("/reports/due-maintenance", caching, handler.DueMaintenanceReport)
		open.GET("/reports/monthly-maintenance-cost", caching, handler.MonthlyCostReport)
		open.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
		open.GET("/subscriptions", handler.GetSubscription)
	}

	protected := r.Group("/")
	protected.Use(rateLimiter, auth)
	{
		protected.POST("/machines", CreateMachine(db))
		protected.PUT("/machines/:id", UpdateMachine(db))
		protected.DELETE("/machines/:id", DeleteMachine(db))
		protected.POST("/personnel", CreatePersonnel(db))
		protected.POST("/faults", handler.CreateFault)
		protected.POST("/parts", CreatePart(db))
		protected.POST("/parts/:id/adjust", handler.AdjustPartStock)
		protected.POST("/maintenance", handler.CreateMaintenance)
		protected.POST("/schedules", CreateSchedule(db))
		protected.POST("/alerts", CreateAlert(db))
		protected.POST("/alerts/:id/resolve", ResolveAlert(db))
		protected.PUT("/subscriptions", handler.PutSubscription)
		protected.DELETE("/subscriptions", handler.DeleteSubscription)
	}

	return r
}
