package usecase

import (
	"context"
	"fmt"
	"time"

	"owner-admin/internal/data/entity"
	"owner-admin/internal/data/repository"
	"owner-admin/internal/dto/request"
	"owner-admin/internal/dto/response"
	"owner-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterForm) error
	Login(ctx context.Context, req *request.LoginForm) (*response.AuthSession, error)
	Logout(ctx context.Context, token string) error
	ListRoles(ctx context.Context) ([]*entity.Role, error)
}

type authService struct {
	repo   *repository.Repository // grouping user, role, & session repos
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterForm) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Check username is free
	existingUser, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return fmt.Errorf("failed to check username")
	}
	if existingUser != nil {
		return fmt.Errorf("username already taken")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}

	// 4. Create user entity
	user := &entity.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
	}

	// 5. Save user and role link in one transaction
	if err := s.repo.User.CreateWithRole(ctx, user, req.RoleID); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.Int64("role_id", req.RoleID))

	return nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginForm) (*response.AuthSession, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user by username
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user by username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to find user")
	}

	// 3. Incorrect username
	if user == nil {
		s.log.Warn("Login failed - incorrect username", zap.String("username", req.Username))
		return nil, fmt.Errorf("invalid credentials")
	}

	// 4. Incorrect password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login failed - incorrect password", zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("invalid credentials")
	}

	// 5. Create session
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	return &response.AuthSession{
		UserID:    user.ID,
		Username:  user.Username,
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	// 1. Parse token
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.String("token", token), zap.Error(err))
		return fmt.Errorf("invalid token format")
	}

	// 2. Revoke session
	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err), zap.String("token", token))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out", zap.String("token", token))
	return nil
}

// ListRoles returns the role options for the registration form.
func (s *authService) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	roles, err := s.repo.Role.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list roles", zap.Error(err))
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, userID int64) (*entity.Session, error) {
	ttl := time.Duration(s.config.Session.TTLHours) * time.Hour

	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: time.Now().Add(ttl),
		CreatedAt: time.Now(),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
