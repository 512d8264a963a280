package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"owner-admin/internal/data/entity"
)

// In-memory repository implementations. They satisfy the same interfaces as
// the pgx-backed ones and serve tests and local experimentation without a
// running Postgres.

type MemoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]entity.User
	links  []entity.UserRole
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		nextID: 1,
		users:  make(map[int64]entity.User),
	}
}

func (m *MemoryUserRepository) CreateWithRole(ctx context.Context, user *entity.User, roleID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username {
			return fmt.Errorf("username %s already exists", user.Username)
		}
	}

	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = *user
	m.links = append(m.links, entity.UserRole{UserID: user.ID, RoleID: roleID})

	return nil
}

func (m *MemoryUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (m *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Username == username {
			user := user
			return &user, nil
		}
	}
	return nil, nil
}

// RoleLinks returns the user_roles rows written so far.
func (m *MemoryUserRepository) RoleLinks() []entity.UserRole {
	m.mu.Lock()
	defer m.mu.Unlock()

	links := make([]entity.UserRole, len(m.links))
	copy(links, m.links)
	return links
}

type MemoryRoleRepository struct {
	mu    sync.Mutex
	roles []entity.Role
}

func NewMemoryRoleRepository(roles ...entity.Role) *MemoryRoleRepository {
	return &MemoryRoleRepository{roles: roles}
}

func (m *MemoryRoleRepository) FindAll(ctx context.Context) ([]*entity.Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*entity.Role, len(m.roles))
	for i := range m.roles {
		role := m.roles[i]
		out[i] = &role
	}
	return out, nil
}

func (m *MemoryRoleRepository) FindByID(ctx context.Context, id int64) (*entity.Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, role := range m.roles {
		if role.ID == id {
			role := role
			return &role, nil
		}
	}
	return nil, nil
}

type MemoryOwnerRepository struct {
	mu     sync.Mutex
	nextID int64
	owners map[int64]entity.Owner
}

func NewMemoryOwnerRepository() *MemoryOwnerRepository {
	return &MemoryOwnerRepository{
		nextID: 1,
		owners: make(map[int64]entity.Owner),
	}
}

func (m *MemoryOwnerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	owner.ID = m.nextID
	m.nextID++
	m.owners[owner.ID] = *owner

	return nil
}

func (m *MemoryOwnerRepository) FindByID(ctx context.Context, id int64) (*entity.Owner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	owner, ok := m.owners[id]
	if !ok {
		return nil, nil
	}
	return &owner, nil
}

func (m *MemoryOwnerRepository) FindAll(ctx context.Context) ([]*entity.Owner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*entity.Owner, 0, len(m.owners))
	for id := range m.owners {
		owner := m.owners[id]
		out = append(out, &owner)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (m *MemoryOwnerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.owners[owner.ID]; !ok {
		return fmt.Errorf("owner %d not found", owner.ID)
	}
	m.owners[owner.ID] = *owner

	return nil
}

func (m *MemoryOwnerRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.owners[id]; !ok {
		return fmt.Errorf("owner %d not found", id)
	}
	delete(m.owners, id)

	return nil
}
