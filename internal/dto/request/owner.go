package request

type OwnerForm struct {
	FirstName   string `form:"first_name" validate:"required"`
	LastName    string `form:"last_name" validate:"required"`
	PhoneNumber string `form:"phone_number" validate:"required"`
	Email       string `form:"email" validate:"required"`
}
