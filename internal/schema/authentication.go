package schema

// LoginRequest is the body of POST /authentication/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /authentication/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Token is an issued token pair.
type Token struct {
	TokenType    string `json:"tokenType"    validate:"required"`
	AccessToken  string `json:"accessToken"  validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	Token Token `json:"token" validate:"required"`
}

// Response bodies of the authentication endpoints.
type (
	LoginResponse   = TokenResponse
	RefreshResponse = TokenResponse
)
