// Package rest serves the five navigation views (budget, must-haves,
// swipe, garage, details) as a JSON API over HTTP.
package rest

import (
	"net/http"

	"github.com/dmitrijs2005/wheel/internal/garage"
	"github.com/dmitrijs2005/wheel/internal/logging"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// garageStore is the part of *garage.Store the handlers need.
type garageStore interface {
	Snapshot() garage.State
	CarsForSwiping() []garage.Vehicle
	AllCars() []garage.Vehicle
	LikedCars() []garage.Vehicle
	Budget() float64
	MustHaves() garage.MustHaves
	GetCarByID(id garage.VehicleID) (garage.Vehicle, bool)
	SetBudget(b float64) error
	ToggleMustHave(f garage.MustHave) (bool, error)
	LikeCar(car garage.Vehicle) error
	NopeCar(car garage.Vehicle) error
}

// metricsSink records requests and serves the scrape endpoint.
type metricsSink interface {
	ObserveHTTP(method string, status int, seconds float64)
	Handler() http.Handler
}

type Router struct {
	store          garageStore
	logger         logging.Logger
	metrics        metricsSink
	allowedOrigins []string
}

// NewRouter builds the router. m may be nil, in which case /metrics is
// not mounted.
func NewRouter(store garageStore, logger logging.Logger, m metricsSink, allowedOrigins []string) *Router {
	return &Router{
		store:          store,
		logger:         logger.With("module", "http_server"),
		metrics:        m,
		allowedOrigins: allowedOrigins,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(requestLogger(rt.logger, rt.metrics))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/health", rt.healthCheck)
	if rt.metrics != nil {
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/state", rt.getState)
		r.Get("/cars", rt.listCars)

		r.Get("/budget", rt.getBudget)
		r.Put("/budget", rt.putBudget)

		r.Get("/musthaves", rt.listMustHaves)
		r.Post("/musthaves/{feature}/toggle", rt.toggleMustHave)

		r.Get("/swipe", rt.getSwipeDeck)
		r.Post("/swipe/{id}/like", rt.likeCar)
		r.Post("/swipe/{id}/nope", rt.nopeCar)

		r.Get("/garage", rt.listLiked)
		r.Get("/details/{id}", rt.getDetails)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, CodeNotFound, "no such route")
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}
