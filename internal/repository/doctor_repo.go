package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/abir-25/doctors-portal-server/internal/domain"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

type doctorModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Specialty string    `gorm:"column:specialty"`
	ImageURL  *string   `gorm:"column:image_url"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (doctorModel) TableName() string { return "doctors" }

func toDomainDoctor(m doctorModel) *domain.Doctor {
	var img string
	if m.ImageURL != nil {
		img = *m.ImageURL
	}
	return &domain.Doctor{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Specialty: m.Specialty,
		ImageURL:  img,
		CreatedAt: m.CreatedAt,
	}
}

func (r *DoctorRepository) Create(ctx context.Context, d *domain.Doctor) error {
	var img *string
	if d.ImageURL != "" {
		v := d.ImageURL
		img = &v
	}

	m := doctorModel{
		Name:      d.Name,
		Email:     strings.TrimSpace(strings.ToLower(d.Email)),
		Specialty: d.Specialty,
		ImageURL:  img,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*d = *toDomainDoctor(m)
	return nil
}

func (r *DoctorRepository) List(ctx context.Context) ([]domain.Doctor, error) {
	var ms []doctorModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Doctor, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainDoctor(m))
	}
	return out, nil
}

func (r *DoctorRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&doctorModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
