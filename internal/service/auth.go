package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/msomdec/tasklist/internal/domain"
)

// AuthService handles registration, login and the authentication gate
// placed in front of every protected operation.
type AuthService struct {
	users  domain.UserRepository
	hasher *PasswordHasher
	tokens *TokenService

	// dummyHash is compared against when the email is unknown, so a failed
	// login costs the same whether or not the account exists.
	dummyHash string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	dummy, _ := hasher.Hash("not-a-real-password")
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummy,
	}
}

// Register creates a new account. Name, email and password are required.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email, and password are required", domain.ErrInvalidInput)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns a signed token with the user.
// An unknown email and a wrong password both yield
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

// Authenticate resolves the caller behind an Authorization header value.
// Failures are domain.ErrMissingToken, domain.ErrMalformedHeader,
// domain.ErrTokenExpired, domain.ErrTokenMalformed or domain.ErrUnknownUser;
// any other error is an internal fault.
func (s *AuthService) Authenticate(ctx context.Context, header string) (*domain.User, error) {
	token, err := ExtractToken(header)
	if err != nil {
		return nil, err
	}

	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnknownUser
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

// ExtractToken pulls the token out of an Authorization header value. It
// accepts "Bearer <token>" with any casing of the scheme, or a bare token.
func ExtractToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", domain.ErrMissingToken
	}

	scheme, rest, found := strings.Cut(header, " ")
	if !found {
		if strings.EqualFold(header, "bearer") {
			return "", domain.ErrMissingToken
		}
		return header, nil
	}

	if !strings.EqualFold(scheme, "bearer") {
		return "", domain.ErrMalformedHeader
	}

	token := strings.TrimSpace(rest)
	if token == "" {
		return "", domain.ErrMissingToken
	}
	return token, nil
}
