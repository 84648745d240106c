package request

// CreateUserRequest represents a staff user creation request
type CreateUserRequest struct {
	Code     string `json:"code" binding:"required,min=1,max=50"`
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// UpdateUserRequest represents a staff user update request
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
	Active   *bool   `json:"active"`
}
