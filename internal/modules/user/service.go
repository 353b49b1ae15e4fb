package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/abir-25/doctors-portal-server/internal/domain"
)

type tokenIssuer interface {
	GenerateToken(email string) (string, error)
}

type Service struct {
	users UserRepository
	jwt   tokenIssuer
}

func NewService(users UserRepository, jwt tokenIssuer) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Upsert is the signup bootstrap path: it stores profile fields for the email
// and can never touch the role column.
func (s *Service) Upsert(ctx context.Context, email string, req UpsertUserRequest) (*domain.User, error) {
	u := &domain.User{
		Email: email,
		Name:  req.Name,
	}
	if err := s.users.Upsert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.users.IsAdmin(ctx, email)
}

func (s *Service) Promote(ctx context.Context, id int64) error {
	err := s.users.PromoteToAdmin(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// IssueToken signs an access token for the email, but only when a user record
// already exists. Unknown emails get nothing.
func (s *Service) IssueToken(ctx context.Context, email string) (string, error) {
	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUnknownUser
		}
		return "", err
	}
	return s.jwt.GenerateToken(email)
}
