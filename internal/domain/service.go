package domain

// Service is a treatment in the catalog. Slots is the full daily template;
// it is never mutated by the booking flow, only filtered per date by the
// availability engine.
type Service struct {
	ID    int64    `json:"_id"`
	Name  string   `json:"name" gorm:"uniqueIndex" validate:"required"`
	Slots []string `json:"slots" gorm:"type:json;serializer:json"`
	Price float64  `json:"price"`
}

// Specialty is the name-only projection of a Service.
type Specialty struct {
	ID   int64  `json:"_id"`
	Name string `json:"name"`
}
