package domain

import "time"

type Doctor struct {
	ID        int64     `json:"_id"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	Specialty string    `json:"specialty" validate:"required"`
	ImageURL  string    `json:"img,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
