package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sfpacim/finance-api/internal/core/domain"
	"github.com/sfpacim/finance-api/internal/core/ports"
)

// dummyHash is compared against when the email is unknown, so login takes the
// same time whether or not the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register hashes the password and persists a new account. A uniqueness
// violation on email comes back as *domain.DuplicateEmailError.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("register: name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	return s.repo.Create(ctx, user)
}

// Login verifies the credentials and returns a signed token whose subject is
// the account email. Any verification failure surfaces uniformly as
// domain.ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)

	hash := dummyHash
	if err == nil {
		hash = user.PasswordHash
	}

	// Always run the bcrypt comparison, even for unknown emails.
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	if err != nil || compareErr != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Email)
}
