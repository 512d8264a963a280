package entity

// Role is reference data assignable to a user at registration. It is not
// consulted for authorization decisions.
type Role struct {
	ID   int64  `db:"role_id"`
	Name string `db:"name"`
}

// UserRole links a user to the role chosen at registration. Exactly one row
// is written per registration, in the same transaction as the user row.
type UserRole struct {
	UserID int64 `db:"user_id"`
	RoleID int64 `db:"role_id"`
}
