package subscriptions

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscription is one newsletter subscriber (`suscripciones`). The unique
// index on email backs the duplicate check done before every insert.
type Subscription struct {
	ID string `gorm:"type:uuid;default:(gen_random_uuid());primaryKey" json:"id"`

	Email  string    `gorm:"not null;uniqueIndex:idx_suscripciones_email" json:"email"`
	Fecha  time.Time `gorm:"not null" json:"fecha"`
	Activo bool      `gorm:"not null;default:true" json:"activo"`
}

func (Subscription) TableName() string { return "suscripciones" }

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
