package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/electronics-store/internal/auth"
	"github.com/rogerio-castellano/electronics-store/internal/catalog"
	"github.com/rogerio-castellano/electronics-store/internal/http/ban"
	"github.com/rogerio-castellano/electronics-store/internal/http/middleware"
	"github.com/rogerio-castellano/electronics-store/internal/logger"
	"github.com/rogerio-castellano/electronics-store/internal/repo"
	"github.com/rogerio-castellano/electronics-store/internal/sales"
	"go.uber.org/zap"
)

// Handlers carries every dependency the route handlers need. It is built once
// at start-up and shared by all requests.
type Handlers struct {
	Stores  *repo.Stores
	Auth    *auth.Service
	Sales   *sales.Resolver
	Catalog *catalog.Service
	Bans    ban.Store
	Metrics *middleware.Metrics
	Log     *zap.Logger
}

func New(stores *repo.Stores, authSvc *auth.Service, bans ban.Store, metrics *middleware.Metrics, log *zap.Logger) *Handlers {
	return &Handlers{
		Stores:  stores,
		Auth:    authSvc,
		Sales:   sales.NewResolver(stores.Equipment, stores.Accessories),
		Catalog: catalog.NewService(stores.Manufacturers, stores.Brands),
		Bans:    bans,
		Metrics: metrics,
		Log:     log,
	}
}

func (h *Handlers) logger(r *http.Request) *zap.Logger {
	return logger.FromContext(r.Context(), h.Log)
}

// serverError logs err and answers 500 with msg.
func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger(r).Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	http.Error(w, msg, http.StatusInternalServerError)
}
