package adaptor

import (
	"owner-admin/internal/usecase"
	"owner-admin/internal/view"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	Owner *OwnerHandler
}

func NewHandler(service *usecase.Service, renderer *view.Renderer, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, renderer, log),
		Owner: NewOwnerHandler(service.Owner, renderer, log),
	}
}
