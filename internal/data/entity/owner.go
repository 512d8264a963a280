package entity

// Owner is the managed business record with full CRUD lifecycle.
type Owner struct {
	ID          int64  `db:"owner_id"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	PhoneNumber string `db:"phone_number"`
	Email       string `db:"email"`
}
