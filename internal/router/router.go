package router

import (
	"net/http"

	"petcare-companion/internal/domain/activities"
	"petcare-companion/internal/domain/dashboard"
	"petcare-companion/internal/domain/health"
	"petcare-companion/internal/domain/pets"
	"petcare-companion/internal/domain/stats"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Pets       pets.Repository
	Activities activities.Repository
	Health     health.Repository
	Stats      stats.Repository

	Dashboard dashboard.Placeholders
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	// Services per module
	petsSvc := pets.NewService(opts.Pets)
	activitiesSvc := activities.NewService(opts.Activities)
	healthSvc := health.NewService(opts.Health)
	statsSvc := stats.NewService(opts.Stats)
	dashboardSvc := dashboard.NewService(petsSvc, activitiesSvc, opts.Dashboard)

	// Routes per module
	pets.RegisterRoutes(r, petsSvc)
	activities.RegisterRoutes(r, activitiesSvc)
	health.RegisterRoutes(r, healthSvc)
	stats.RegisterRoutes(r, statsSvc)
	dashboard.RegisterRoutes(r, dashboardSvc)

	return r
}
