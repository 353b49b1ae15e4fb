package user

import (
	"context"

	"github.com/abir-25/doctors-portal-server/internal/domain"
)

// UserRepository defines the store operations this module needs.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) error
	PromoteToAdmin(ctx context.Context, id int64) error
	IsAdmin(ctx context.Context, email string) (bool, error)
}
