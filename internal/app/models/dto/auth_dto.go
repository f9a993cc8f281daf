package dto

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Name       string `json:"name" binding:"required" example:"Jane Doe"`
	Email      string `json:"email" binding:"required,email" example:"jane@campus.edu"`
	Password   string `json:"password" binding:"required,min=6" example:"s3cret42"`
	Role       string `json:"role" binding:"required" example:"student"`
	Department string `json:"department" example:"CS"`
}

// LoginRequest is the payload for authentication
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@campus.edu"`
	Password string `json:"password" binding:"required" example:"s3cret42"`
}

// RefreshTokenRequest carries the refresh token being exchanged
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserSummary is the public view of a user returned with tokens
type UserSummary struct {
	ID         int64  `json:"id" example:"1"`
	Name       string `json:"name" example:"Jane Doe"`
	Email      string `json:"email" example:"jane@campus.edu"`
	Role       string `json:"role" example:"student"`
	Department string `json:"department,omitempty" example:"CS"`
}

// TokenResponse is returned on successful login or token refresh
type TokenResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	ExpiresIn    int         `json:"expiresIn" example:"3600"`
	User         UserSummary `json:"user"`
}
