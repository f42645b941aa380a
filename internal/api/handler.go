package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"factory-maintenance-backend/internal/store"
)

// AlertNotifier dispatches a push-notification job for a machine that has a
// fresh critical-fault alert. Implemented by notification.WorkerPool.
type AlertNotifier interface {
	Dispatch(machineID int64)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store     store.Store
	webpush   *webpush.Options
	notifier  AlertNotifier
	jwtSecret string
	tokenTTL  time.Duration
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, opts RouterOptions) *Handler {
	return &Handler{
		store:     s,
		webpush:   opts.WebPush,
		notifier:  opts.Notifier,
		jwtSecret: opts.JWTSecret,
		tokenTTL:  opts.TokenTTL,
	}
}
