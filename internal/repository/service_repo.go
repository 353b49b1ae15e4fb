package repository

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/abir-25/doctors-portal-server/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID    int64   `gorm:"column:id;primaryKey"`
	Name  string  `gorm:"column:name"`
	Slots []byte  `gorm:"column:slots"`
	Price float64 `gorm:"column:price"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) (*domain.Service, error) {
	slots := []string{}
	if len(m.Slots) > 0 {
		if err := json.Unmarshal(m.Slots, &slots); err != nil {
			return nil, err
		}
	}
	return &domain.Service{
		ID:    m.ID,
		Name:  m.Name,
		Slots: slots,
		Price: m.Price,
	}, nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	var ms []serviceModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Service, 0, len(ms))
	for _, m := range ms {
		s, err := toDomainService(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *ServiceRepository) ListNames(ctx context.Context) ([]domain.Specialty, error) {
	var ms []serviceModel
	tx := r.db.WithContext(ctx).Select("id", "name").Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Specialty, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.Specialty{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

// Upsert by name; used by the seed command only.
func (r *ServiceRepository) Upsert(ctx context.Context, s *domain.Service) error {
	raw, err := json.Marshal(s.Slots)
	if err != nil {
		return err
	}

	m := serviceModel{ID: s.ID, Name: s.Name, Slots: raw, Price: s.Price}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"slots", "price"}),
	}).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	s.ID = m.ID
	return nil
}
