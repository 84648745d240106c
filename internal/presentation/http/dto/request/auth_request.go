package request

// LoginRequest represents a login request. Password is only required for
// admin accounts; attendants log in with their code alone.
type LoginRequest struct {
	Code     string `json:"code" binding:"required"`
	Password string `json:"password"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
