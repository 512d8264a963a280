package repository

import (
	"context"
	"fmt"

	"owner-admin/internal/data/entity"
	"owner-admin/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	// CreateWithRole inserts the user row and its user_roles link in a single
	// transaction and sets user.ID from the generated key.
	CreateWithRole(ctx context.Context, user *entity.User, roleID int64) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (ur *userRepository) CreateWithRole(ctx context.Context, user *entity.User, roleID int64) error {
	tx, err := ur.db.Begin(ctx)
	if err != nil {
		ur.log.Error("Failed to begin registration transaction", zap.Error(err))
		return fmt.Errorf("begin registration tx: %w", err)
	}
	defer tx.Rollback(ctx)

	insertUser := `
		INSERT INTO users (username, password, first_name, last_name, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id
	`

	err = tx.QueryRow(ctx, insertUser,
		user.Username,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Email,
	).Scan(&user.ID)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}

	insertRole := `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`

	if _, err := tx.Exec(ctx, insertRole, user.ID, roleID); err != nil {
		ur.log.Error("Failed to link user role",
			zap.Error(err),
			zap.Int64("user_id", user.ID),
			zap.Int64("role_id", roleID),
		)
		return fmt.Errorf("link user %d to role %d: %w", user.ID, roleID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		ur.log.Error("Failed to commit registration", zap.Error(err))
		return fmt.Errorf("commit registration: %w", err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT user_id, username, password, first_name, last_name, email
		FROM users
		WHERE user_id = $1
	`

	var user entity.User
	// QueryRow returns at most one row
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Email,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	return &user, nil
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT user_id, username, password, first_name, last_name, email
		FROM users
		WHERE username = $1
	`

	var user entity.User
	// QueryRow returns at most one row
	err := ur.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Email,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}

	return &user, nil
}
