package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dberestov/taskdeck/internal/common"
	"github.com/dberestov/taskdeck/internal/cryptox"
	"github.com/dberestov/taskdeck/internal/server/auth"
)

// Service implements registration and login on top of the credential
// repository and the token service. Input shape validation (email format,
// minimum password length) is the HTTP boundary's job; this layer assumes it
// already happened.
type Service struct {
	repo   Repository
	tokens *auth.TokenService
}

func NewService(repo Repository, tokens *auth.TokenService) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register creates an account and returns the public projection, never the
// hash. The email is normalized to lower case before storage.
func (s *Service) Register(ctx context.Context, email, password string) (*PublicUser, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, strings.ToLower(email), hash)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	public := user.Public()
	return &public, nil
}

// Login verifies the credentials and returns a session token with the
// authenticated user. Unknown email and wrong password both come back as
// common.ErrUnauthorized, indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, *PublicUser, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrUnauthorized
		}
		return "", nil, fmt.Errorf("looking up user: %w", err)
	}

	if !cryptox.CheckPassword(password, user.PasswordHash) {
		return "", nil, common.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}

	public := user.Public()
	return token, &public, nil
}

// GetByID resolves the account behind a verified token.
func (s *Service) GetByID(ctx context.Context, id int64) (*PublicUser, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	public := user.Public()
	return &public, nil
}
