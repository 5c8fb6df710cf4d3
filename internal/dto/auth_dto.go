package dto

// RegisterRequest accepts JSON or multipart form (the signup page posts
// FormData).
type RegisterRequest struct {
	Username string  `json:"username" form:"username" validate:"required,min=3,max=50"`
	Email    *string `json:"email"    form:"email"    validate:"omitempty,email"`
	Password string  `json:"password" form:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserResponse `json:"user"`
}

// UpdateUserRoleRequest assigns a role through the admin user screen.
type UpdateUserRoleRequest struct {
	Role string `json:"role" form:"role" validate:"required"`
}

type UserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Role     string  `json:"role"`
	IsActive bool    `json:"is_active"`
}
