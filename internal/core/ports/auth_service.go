package ports

import "context"

// AuthService handles registration and login. Both return a signed token
// embedding the identity claims {id, name, email, role}.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}
