package wire

import (
	"net/http"

	"zoo-admin/internal/adaptor"
	"zoo-admin/internal/data/repository"
	"zoo-admin/internal/usecase"
	"zoo-admin/pkg/middleware"
	"zoo-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers over repo and mounts every route.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, config, logger),
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	wireAuth(r, handler.Auth, config, logger)
	wireEmployee(r, handler.Employee)
	wireCatalog(r, handler)
	wireSales(r, handler.Sales)
	wireDashboard(r, handler.Dashboard)
	wirePortal(r, handler.Portal)

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, map[string]string{"status": "ok"})
	})

	return r
}
