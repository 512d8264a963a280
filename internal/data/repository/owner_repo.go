package repository

import (
	"context"
	"fmt"

	"owner-admin/internal/data/entity"
	"owner-admin/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OwnerRepository interface {
	Create(ctx context.Context, owner *entity.Owner) error
	FindByID(ctx context.Context, id int64) (*entity.Owner, error)
	FindAll(ctx context.Context) ([]*entity.Owner, error)
	Update(ctx context.Context, owner *entity.Owner) error
	Delete(ctx context.Context, id int64) error
}

type ownerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOwnerRepository(db database.PgxIface, log *zap.Logger) OwnerRepository {
	return &ownerRepository{
		db:  db,
		log: log.With(zap.String("repository", "owner")),
	}
}

// Create inserts a new owner record and sets owner.ID from the generated key.
func (or *ownerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	query := `
		INSERT INTO owners (first_name, last_name, phone_number, email)
		VALUES ($1, $2, $3, $4)
		RETURNING owner_id
	`

	err := or.db.QueryRow(ctx, query,
		owner.FirstName,
		owner.LastName,
		owner.PhoneNumber,
		owner.Email,
	).Scan(&owner.ID)

	if err != nil {
		or.log.Error("Failed to create owner",
			zap.Error(err),
			zap.String("email", owner.Email),
		)
		return fmt.Errorf("create owner %s: %w", owner.Email, err)
	}

	return nil
}

func (or *ownerRepository) FindByID(ctx context.Context, id int64) (*entity.Owner, error) {
	query := `
		SELECT owner_id, first_name, last_name, phone_number, email
		FROM owners
		WHERE owner_id = $1
	`

	var owner entity.Owner
	// QueryRow returns at most one row
	err := or.db.QueryRow(ctx, query, id).Scan(
		&owner.ID,
		&owner.FirstName,
		&owner.LastName,
		&owner.PhoneNumber,
		&owner.Email,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		or.log.Error("Failed to find owner by ID",
			zap.Error(err),
			zap.Int64("owner_id", id),
		)
		return nil, fmt.Errorf("find owner by ID %d: %w", id, err)
	}

	return &owner, nil
}

// FindAll retrieves every owner row. The dataset is a small admin-managed
// list, so there is no pagination.
func (or *ownerRepository) FindAll(ctx context.Context) ([]*entity.Owner, error) {
	query := `
		SELECT owner_id, first_name, last_name, phone_number, email
		FROM owners
		ORDER BY owner_id
	`

	rows, err := or.db.Query(ctx, query)
	if err != nil {
		or.log.Error("Failed to get all owners", zap.Error(err))
		return nil, fmt.Errorf("find all owners: %w", err)
	}
	defer rows.Close()

	var owners []*entity.Owner
	for rows.Next() {
		var owner entity.Owner
		err := rows.Scan(
			&owner.ID,
			&owner.FirstName,
			&owner.LastName,
			&owner.PhoneNumber,
			&owner.Email,
		)
		if err != nil {
			or.log.Error("Failed to scan owner row", zap.Error(err))
			return nil, fmt.Errorf("scan owner row: %w", err)
		}
		owners = append(owners, &owner)
	}

	if err := rows.Err(); err != nil {
		or.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate owners rows: %w", err)
	}

	return owners, nil
}

func (or *ownerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	query := `
		UPDATE owners
		SET first_name = $2, last_name = $3, phone_number = $4, email = $5
		WHERE owner_id = $1
	`

	result, err := or.db.Exec(ctx, query,
		owner.ID,
		owner.FirstName,
		owner.LastName,
		owner.PhoneNumber,
		owner.Email,
	)

	if err != nil {
		or.log.Error("Failed to update owner",
			zap.Error(err),
			zap.Int64("owner_id", owner.ID),
		)
		return fmt.Errorf("update owner %d: %w", owner.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("owner %d not found", owner.ID)
	}

	return nil
}

func (or *ownerRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM owners WHERE owner_id = $1`

	result, err := or.db.Exec(ctx, query, id)
	if err != nil {
		or.log.Error("Failed to delete owner",
			zap.Error(err),
			zap.Int64("owner_id", id),
		)
		return fmt.Errorf("delete owner %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("owner %d not found", id)
	}

	or.log.Info("Owner deleted", zap.Int64("owner_id", id))
	return nil
}
