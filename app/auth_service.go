package app

import (
	"context"
	"log"
	"strings"

	"mathwiz/internal/auth"
	appErrors "mathwiz/internal/errors"
	"mathwiz/models"
	"mathwiz/ports"
)

// AuthService handles registration, login and token authentication.
type AuthService struct {
	users  ports.UserRepository
	tokens *auth.TokenIssuer
}

// NewAuthService creates an auth service
func NewAuthService(users ports.UserRepository, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new account with zero XP.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || password == "" {
		return nil, appErrors.InvalidInput("name, email and password are required")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to hash password")
	}

	user := &models.User{
		Name:           name,
		Email:          email,
		HashedPassword: hashed,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	log.Printf("[Auth] Registered user %s", user.Email)
	return user, nil
}

// Login verifies credentials and issues a token. Wrong email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, appErrors.Unauthorized("incorrect email or password")
	}
	if !auth.VerifyPassword(password, user.HashedPassword) {
		return "", nil, appErrors.Unauthorized("incorrect email or password")
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", nil, appErrors.Wrap(err, "failed to issue token")
	}
	return token, user, nil
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	email, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, appErrors.Unauthorized("could not validate credentials")
	}
	return user, nil
}
