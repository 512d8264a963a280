package response

import (
	"owner-admin/internal/data/entity"
)

// OwnerView is the template-facing shape of an owner row.
type OwnerView struct {
	ID          int64
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
}

func OwnerToView(owner *entity.Owner) OwnerView {
	return OwnerView{
		ID:          owner.ID,
		FirstName:   owner.FirstName,
		LastName:    owner.LastName,
		PhoneNumber: owner.PhoneNumber,
		Email:       owner.Email,
	}
}

func OwnersToView(owners []*entity.Owner) []OwnerView {
	views := make([]OwnerView, len(owners))
	for i, owner := range owners {
		views[i] = OwnerToView(owner)
	}
	return views
}

// RoleOption is a role selector entry on the registration form.
type RoleOption struct {
	ID   int64
	Name string
}

func RolesToOptions(roles []*entity.Role) []RoleOption {
	options := make([]RoleOption, len(roles))
	for i, role := range roles {
		options[i] = RoleOption{ID: role.ID, Name: role.Name}
	}
	return options
}
