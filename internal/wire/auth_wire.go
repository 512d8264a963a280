package wire

import (
	"owner-admin/internal/adaptor"
	"owner-admin/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/users/register", authHandler.ShowRegister)
	r.Post("/users/register", authHandler.Register)
	r.Get("/users/login", authHandler.ShowLogin)
	r.Post("/users/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth(log))

		pr.Get("/users/logout", authHandler.ShowLogout)
		pr.Post("/users/logout", authHandler.Logout)
	})
}
