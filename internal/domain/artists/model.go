package artists

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArtistProfile is one featured artist (`artistas`). Unlike opinion columns,
// a profile is invalid without exactly one image.
type ArtistProfile struct {
	ID string `gorm:"type:uuid;default:(gen_random_uuid());primaryKey" json:"id"`

	Titulo    string `gorm:"not null" json:"titulo"`
	Ubicacion string `gorm:"not null" json:"ubicacion"`
	Texto     string `gorm:"type:text;not null" json:"texto"`
	Imagen    string `gorm:"not null" json:"imagen"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ArtistProfile) TableName() string { return "artistas" }

func (a *ArtistProfile) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
