package repository

import (
	"owner-admin/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Role    RoleRepository
	Owner   OwnerRepository
	Session SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Role:    NewRoleRepository(db, log),
		Owner:   NewOwnerRepository(db, log),
		Session: NewSessionRepository(db, log),
	}
}
