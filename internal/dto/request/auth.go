package request

// Forms are decoded from application/x-www-form-urlencoded bodies. Tags stay
// at "required": field shape (email, phone) is deliberately not checked.

type RegisterForm struct {
	Username  string `form:"username" validate:"required"`
	Password  string `form:"password" validate:"required"`
	FirstName string `form:"first_name" validate:"required"`
	LastName  string `form:"last_name" validate:"required"`
	Email     string `form:"email" validate:"required"`
	RoleID    int64  `form:"role" validate:"required"`
}

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
