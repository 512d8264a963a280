package repository

import (
	"context"
	"fmt"

	"owner-admin/internal/data/entity"
	"owner-admin/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoleRepository interface {
	FindAll(ctx context.Context) ([]*entity.Role, error)
	FindByID(ctx context.Context, id int64) (*entity.Role, error)
}

type roleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoleRepository(db database.PgxIface, log *zap.Logger) RoleRepository {
	return &roleRepository{
		db:  db,
		log: log.With(zap.String("repository", "role")),
	}
}

func (rr *roleRepository) FindAll(ctx context.Context) ([]*entity.Role, error) {
	query := `SELECT role_id, name FROM roles ORDER BY role_id`

	rows, err := rr.db.Query(ctx, query)
	if err != nil {
		rr.log.Error("Failed to get roles", zap.Error(err))
		return nil, fmt.Errorf("find all roles: %w", err)
	}
	defer rows.Close()

	var roles []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			rr.log.Error("Failed to scan role row", zap.Error(err))
			return nil, fmt.Errorf("scan role row: %w", err)
		}
		roles = append(roles, &role)
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate roles rows: %w", err)
	}

	return roles, nil
}

func (rr *roleRepository) FindByID(ctx context.Context, id int64) (*entity.Role, error) {
	query := `SELECT role_id, name FROM roles WHERE role_id = $1`

	var role entity.Role
	err := rr.db.QueryRow(ctx, query, id).Scan(&role.ID, &role.Name)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find role by ID",
			zap.Error(err),
			zap.Int64("role_id", id),
		)
		return nil, fmt.Errorf("find role by ID %d: %w", id, err)
	}

	return &role, nil
}
