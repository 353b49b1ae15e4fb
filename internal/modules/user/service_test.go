package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/abir-25/doctors-portal-server/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil && u != nil {
		u.ID = 5
		u.Role = domain.RoleNone // the store never lets an upsert set a role
	}
	return args.Error(0)
}

func (m *MockUserRepository) PromoteToAdmin(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type stubIssuer struct{}

func (stubIssuer) GenerateToken(email string) (string, error) { return "token-for-" + email, nil }

func TestService_IssueToken_KnownUser(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, stubIssuer{})

	repo.On("GetByEmail", mock.Anything, "a@x.com").Return(&domain.User{ID: 1, Email: "a@x.com"}, nil)

	token, err := svc.IssueToken(context.Background(), "a@x.com")

	assert.NoError(t, err)
	assert.Equal(t, "token-for-a@x.com", token)
}

func TestService_IssueToken_UnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, stubIssuer{})

	repo.On("GetByEmail", mock.Anything, "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)

	token, err := svc.IssueToken(context.Background(), "nobody@x.com")

	assert.ErrorIs(t, err, ErrUnknownUser)
	assert.Empty(t, token)
}

func TestService_Upsert_NeverSetsRole(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, stubIssuer{})

	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "a@x.com" && u.Role == domain.RoleNone
	})).Return(nil)

	u, err := svc.Upsert(context.Background(), "a@x.com", UpsertUserRequest{Name: "Alice"})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleNone, u.Role)
	repo.AssertExpectations(t)
}

func TestService_Promote_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, stubIssuer{})

	repo.On("PromoteToAdmin", mock.Anything, int64(404)).Return(gorm.ErrRecordNotFound)

	err := svc.Promote(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_IsAdmin(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, stubIssuer{})

	repo.On("IsAdmin", mock.Anything, "admin@x.com").Return(true, nil)
	repo.On("IsAdmin", mock.Anything, "user@x.com").Return(false, nil)

	isAdmin, err := svc.IsAdmin(context.Background(), "admin@x.com")
	assert.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin(context.Background(), "user@x.com")
	assert.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestService_List_StoreFailure(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, stubIssuer{})

	repo.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.List(context.Background())
	assert.Error(t, err)
}
