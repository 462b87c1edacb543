package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/events-api/internal/core/domain"
	"github.com/campushub/events-api/internal/core/ports"
)

// LoginThrottle limits repeated failed logins per account. Implementations
// may be unavailable; callers treat throttle errors as non-fatal.
type LoginThrottle interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration and login.
type AuthService struct {
	users    ports.UserRepository
	tokens   *TokenManager
	throttle LoginThrottle
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenManager, throttle LoginThrottle, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, throttle: throttle, log: log}
}

// Register creates a user with the default role and returns a signed token.
// Duplicate emails surface as domain.ErrUserExists via the repository's
// unique index.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	if name == "" || email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return s.tokens.Issue(created)
}

// Login verifies the credentials and returns a freshly signed token. Unknown
// email and wrong password fail identically so callers cannot probe which
// addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if blocked, err := s.throttle.Blocked(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login throttle check failed, proceeding")
	} else if blocked {
		return "", domain.ErrTooManyLoginAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", domain.ErrInvalidCredentials
	}

	if err := s.throttle.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login throttle reset failed")
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return s.tokens.Issue(user)
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login throttle record failed")
	}
}
