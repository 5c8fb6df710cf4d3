package model

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies products. Independent lifecycle from Brand.
type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CategoryName string    `gorm:"uniqueIndex;not null" json:"category_name"`
	Slug         string    `gorm:"uniqueIndex;not null" json:"slug"`
	CatImage     *string   `json:"cat_image"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName keeps the plural GORM would derive anyway explicit, matching the
// rest of the schema.
func (Category) TableName() string { return "categories" }
