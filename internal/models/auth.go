package models

// RegisterForm is the form body accepted by POST /register
type RegisterForm struct {
	Username string  `schema:"username" validate:"required"`
	Password string  `schema:"password" validate:"required"`
	Avatar   *string `schema:"avatar"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// example: User registered successfully
	Msg string `json:"msg"`
}

// LoginForm is the OAuth2 password form accepted by POST /login
type LoginForm struct {
	Username  string `schema:"username" validate:"required"`
	Password  string `schema:"password" validate:"required"`
	GrantType string `schema:"grant_type"`
	Scope     string `schema:"scope"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// example: bearer
	TokenType string `json:"token_type"`
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Place not found
	Error string `json:"error"`
}
