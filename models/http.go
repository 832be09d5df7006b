package models

// RegisterRequest is the body of the registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=320"`
	Password string `json:"password" validate:"required,min=8,max=256"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// LoginRequest is the body of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// ImportResponse summarises a library CSV import.
//
// Inserted counts stored rows, Rows counts data rows read from the file
// including skipped ones.
type ImportResponse struct {
	Inserted int `json:"inserted"`
	Rows     int `json:"rows"`
}

// ItemsResponse wraps list endpoints as {"items": [...]}.
type ItemsResponse[T any] struct {
	Items []T `json:"items"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
