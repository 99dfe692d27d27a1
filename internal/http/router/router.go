package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "github.com/rogerio-castellano/electronics-store/docs"
	"github.com/rogerio-castellano/electronics-store/internal/auth"
	"github.com/rogerio-castellano/electronics-store/internal/http/handlers"
	mw "github.com/rogerio-castellano/electronics-store/internal/http/middleware"
	rl "github.com/rogerio-castellano/electronics-store/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Config struct {
	Handlers *handlers.Handlers
	Tokens   *auth.TokenIssuer
	Limiter  *rl.Limiter
	Gatherer prometheus.Gatherer
}

func NewRouter(cfg Config) http.Handler {
	h := cfg.Handlers
	r := chi.NewRouter()

	r.Use(mw.RequestID(h.Log))
	r.Use(mw.Logging(h.Log))
	r.Use(chimw.Recoverer)
	if h.Metrics != nil {
		r.Use(h.Metrics.Middleware)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Form-driven route family.
	h.MountForms(r)

	// Public catalog projections.
	r.Get("/modelos", h.GetModelsHandler)
	r.Get("/marcas", h.GetBrandsHandler)
	r.Get("/caracteristicas", h.GetFeaturesHandler)
	r.Get("/categorias", h.GetCategoriesHandler)
	r.Get("/proveedores", h.GetSuppliersHandler)
	r.Get("/fabricantes", h.GetManufacturersHandler)

	r.With(cfg.Limiter.Middleware).Post("/login", h.LoginHandler)

	r.Group(func(r chi.Router) {
		r.Use(mw.RequireToken(cfg.Tokens))

		r.Get("/equipos", h.GetEquipmentHandler)
		r.Post("/equipos", h.CreateEquipmentHandler)
		r.Put("/equipos", h.UpdateEquipmentHandler)
		r.Delete("/equipos", h.DeleteEquipmentHandler)

		r.Get("/users", h.GetUsersHandler)
		r.Post("/users", h.CreateUserHandler)
		r.Get("/bans", h.GetBansHandler)

		r.Get("/metrics/dashboard", h.GetDashboardMetricsHandler)
	})

	return r
}
