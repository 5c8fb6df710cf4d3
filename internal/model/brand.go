package model

import (
	"time"

	"github.com/google/uuid"
)

// Brand is one of the two distributed labels ("Kazi", "Harvest") plus any
// later additions. Products reference it; shops carry one discount percentage
// per brand.
type Brand struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BrandName string    `gorm:"uniqueIndex;not null" json:"brand_name"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
