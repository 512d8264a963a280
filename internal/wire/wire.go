// internal/wire/wire.go
package wire

import (
	"net/http"

	"owner-admin/internal/adaptor"
	"owner-admin/internal/data/repository"
	"owner-admin/internal/usecase"
	"owner-admin/internal/view"
	"owner-admin/pkg/middleware"
	"owner-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	renderer, err := view.NewRenderer(logger)
	if err != nil {
		return nil, err
	}

	// Initialize services and handlers
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, renderer, logger)

	// Setup router
	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}, nil
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware. SessionAuth runs before Logger so request
	// logs carry the resolved username.
	r.Use(middleware.Recover(logger))
	r.Use(middleware.SessionAuth(repo.Session, repo.User, logger))
	r.Use(middleware.Logger(logger))

	// Apply routes
	wireAuth(r, handler.Auth, logger)
	wireOwner(r, handler.Owner, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
