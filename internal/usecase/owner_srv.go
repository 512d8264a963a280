package usecase

import (
	"context"
	"fmt"

	"owner-admin/internal/data/entity"
	"owner-admin/internal/data/repository"
	"owner-admin/internal/dto/request"
	"owner-admin/internal/dto/response"
	"owner-admin/pkg/utils"

	"go.uber.org/zap"
)

type OwnerService interface {
	ListOwners(ctx context.Context) ([]response.OwnerView, error)
	GetOwner(ctx context.Context, id int64) (*response.OwnerView, error)
	CreateOwner(ctx context.Context, req *request.OwnerForm) (*response.OwnerView, error)
	UpdateOwner(ctx context.Context, id int64, req *request.OwnerForm) error
	DeleteOwner(ctx context.Context, id int64) error
}

type ownerService struct {
	owners repository.OwnerRepository
	log    *zap.Logger
}

func NewOwnerService(owners repository.OwnerRepository, log *zap.Logger) OwnerService {
	return &ownerService{
		owners: owners,
		log:    log.With(zap.String("service", "owner")),
	}
}

func (s *ownerService) ListOwners(ctx context.Context) ([]response.OwnerView, error) {
	owners, err := s.owners.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list owners", zap.Error(err))
		return nil, fmt.Errorf("list owners: %w", err)
	}

	return response.OwnersToView(owners), nil
}

func (s *ownerService) GetOwner(ctx context.Context, id int64) (*response.OwnerView, error) {
	owner, err := s.owners.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get owner", zap.Error(err), zap.Int64("owner_id", id))
		return nil, fmt.Errorf("get owner %d: %w", id, err)
	}
	if owner == nil {
		return nil, fmt.Errorf("owner %d not found", id)
	}

	view := response.OwnerToView(owner)
	return &view, nil
}

func (s *ownerService) CreateOwner(ctx context.Context, req *request.OwnerForm) (*response.OwnerView, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create owner validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	owner := &entity.Owner{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}

	if err := s.owners.Create(ctx, owner); err != nil {
		s.log.Error("Failed to create owner", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create owner: %w", err)
	}

	s.log.Info("Owner created",
		zap.Int64("owner_id", owner.ID),
		zap.String("email", owner.Email))

	view := response.OwnerToView(owner)
	return &view, nil
}

func (s *ownerService) UpdateOwner(ctx context.Context, id int64, req *request.OwnerForm) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update owner validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	owner := &entity.Owner{
		ID:          id,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}

	if err := s.owners.Update(ctx, owner); err != nil {
		s.log.Error("Failed to update owner", zap.Error(err), zap.Int64("owner_id", id))
		return fmt.Errorf("update owner %d: %w", id, err)
	}

	s.log.Info("Owner updated", zap.Int64("owner_id", id))
	return nil
}

func (s *ownerService) DeleteOwner(ctx context.Context, id int64) error {
	if err := s.owners.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete owner", zap.Error(err), zap.Int64("owner_id", id))
		return fmt.Errorf("delete owner %d: %w", id, err)
	}

	s.log.Info("Owner deleted", zap.Int64("owner_id", id))
	return nil
}
