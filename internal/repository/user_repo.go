package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/abir-25/doctors-portal-server/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Email     string    `gorm:"column:email"`
	Name      string    `gorm:"column:name"`
	Role      string    `gorm:"column:role"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		Role:      domain.UserRole(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var ms []userModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.User, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

// Upsert writes the profile fields for an email, never the role. A fresh row
// gets RoleNone; an existing row keeps whatever role it already has.
func (r *UserRepository) Upsert(ctx context.Context, u *domain.User) error {
	m := userModel{
		Email: normalizeEmail(u.Email),
		Name:  u.Name,
		Role:  string(domain.RoleNone),
	}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}

	// re-read so the caller sees the stored role, not the zero value
	stored, err := r.GetByEmail(ctx, m.Email)
	if err != nil {
		return err
	}
	*u = *stored
	return nil
}

// PromoteToAdmin flips a user's role to admin. Returns gorm.ErrRecordNotFound
// when the id does not exist.
func (r *UserRepository) PromoteToAdmin(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", id).
		Update("role", string(domain.RoleAdmin))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsAdmin reports whether the email has a stored record with the admin role.
// An absent record is simply not an admin, not an error.
func (r *UserRepository) IsAdmin(ctx context.Context, email string) (bool, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, tx.Error
	}
	return domain.UserRole(m.Role).IsAdmin(), nil
}
