package columns

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpinionColumn is one editorial column. The table and JSON field names follow
// the wire schema consumed by the site (`columnas_opinion`).
type OpinionColumn struct {
	ID string `gorm:"type:uuid;default:(gen_random_uuid());primaryKey" json:"id"`

	Titulo      string `gorm:"not null" json:"titulo"`
	Descripcion string `gorm:"type:text;not null" json:"descripcion"`

	// Up to 3 image URLs, stored as a JSON array.
	Images []string `gorm:"serializer:json" json:"images,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (OpinionColumn) TableName() string { return "columnas_opinion" }

// BeforeCreate assigns an id when the store default is unavailable (sqlite).
func (c *OpinionColumn) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
