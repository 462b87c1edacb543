package handler

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// tokenResponse is returned by every operation that issues a token.
type tokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}
