package usecase

import (
	"owner-admin/internal/data/repository"
	"owner-admin/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	Owner OwnerService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, config, log),
		Owner: NewOwnerService(repo.Owner, log),
	}
}
