package wire

import (
	"net/http"

	"owner-admin/internal/adaptor"
	"owner-admin/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOwner(
	r chi.Router,
	ownerHandler *adaptor.OwnerHandler,
	log *zap.Logger,
) {
	// Every owner route is protected, forms and mutations alike.
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth(log))

		pr.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/owners", http.StatusSeeOther)
		})

		pr.Get("/owners", ownerHandler.List)

		pr.Get("/owner/create", ownerHandler.ShowCreate)
		pr.Post("/owner/create", ownerHandler.Create)

		pr.Get("/owner/update/{owner_id}", ownerHandler.ShowUpdate)
		pr.Post("/owner/update/{owner_id}", ownerHandler.Update)

		pr.Get("/owner/delete/{owner_id}", ownerHandler.ShowDelete)
		pr.Post("/owner/delete/{owner_id}", ownerHandler.Delete)
	})
}
