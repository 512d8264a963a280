package usecase

import (
	"context"
	"testing"

	"owner-admin/internal/data/entity"
	"owner-admin/internal/data/repository"
	"owner-admin/internal/dto/request"
	"owner-admin/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(t *testing.T) (AuthService, *repository.MemoryUserRepository, *repository.MemorySessionRepository) {
	t.Helper()

	users := repository.NewMemoryUserRepository()
	sessions := repository.NewMemorySessionRepository()
	repos := &repository.Repository{
		User: users,
		Role: repository.NewMemoryRoleRepository(
			entity.Role{ID: 1, Name: "admin"},
		),
		Owner:   repository.NewMemoryOwnerRepository(),
		Session: sessions,
	}

	config := &utils.Config{Session: utils.SessionConfig{TTLHours: 1}}

	return NewAuthService(repos, config, zap.NewNop()), users, sessions
}

func registerForm() *request.RegisterForm {
	return &request.RegisterForm{
		Username:  "boss",
		Password:  "hunter2",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		RoleID:    1,
	}
}

func TestRegisterCreatesUserWithRoleLink(t *testing.T) {
	svc, users, _ := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, registerForm()))

	user, err := users.FindByUsername(ctx, "boss")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotZero(t, user.ID)

	// Password is stored as a bcrypt hash, never verbatim.
	require.NotEqual(t, "hunter2", user.PasswordHash)
	require.True(t, utils.CheckPasswordHash("hunter2", user.PasswordHash))

	links := users.RoleLinks()
	require.Len(t, links, 1)
	require.Equal(t, entity.UserRole{UserID: user.ID, RoleID: 1}, links[0])
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc, users, _ := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, registerForm()))

	err := svc.Register(ctx, registerForm())
	require.ErrorContains(t, err, "username already taken")

	// Still exactly one user and one role link.
	require.Len(t, users.RoleLinks(), 1)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc, _, _ := newAuthService(t)

	form := registerForm()
	form.Password = ""

	err := svc.Register(context.Background(), form)
	require.ErrorContains(t, err, "validation failed")
}

func TestLoginSucceedsWithStoredCredentials(t *testing.T) {
	svc, _, sessions := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, registerForm()))

	auth, err := svc.Login(ctx, &request.LoginForm{Username: "boss", Password: "hunter2"})
	require.NoError(t, err)
	require.Equal(t, "boss", auth.Username)
	require.NotEmpty(t, auth.Token)

	session, err := sessions.FindValidSession(ctx, auth.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Equal(t, auth.UserID, session.UserID)
}

func TestLoginFailsOnBadCredentials(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, registerForm()))

	// Incorrect username.
	_, err := svc.Login(ctx, &request.LoginForm{Username: "nobody", Password: "hunter2"})
	require.ErrorContains(t, err, "invalid credentials")

	// Incorrect password.
	_, err = svc.Login(ctx, &request.LoginForm{Username: "boss", Password: "wrong"})
	require.ErrorContains(t, err, "invalid credentials")
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, sessions := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, registerForm()))

	auth, err := svc.Login(ctx, &request.LoginForm{Username: "boss", Password: "hunter2"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, auth.Token))

	session, err := sessions.FindValidSession(ctx, auth.Token)
	require.NoError(t, err)
	require.Nil(t, session)

	// A second logout of the same token fails.
	require.Error(t, svc.Logout(ctx, auth.Token))
}

func TestLogoutRejectsMalformedToken(t *testing.T) {
	svc, _, _ := newAuthService(t)

	err := svc.Logout(context.Background(), "not-a-uuid")
	require.ErrorContains(t, err, "invalid token format")
}

func TestListRoles(t *testing.T) {
	svc, _, _ := newAuthService(t)

	roles, err := svc.ListRoles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 1)
	require.Equal(t, "admin", roles[0].Name)
}
