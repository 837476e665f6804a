package models

import "time"

// Subcategory belongs to a Category. Whether its products actually reference
// the same category is not enforced here (known data-integrity gap).
type Subcategory struct {
	ID           string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CategoryID   string    `gorm:"type:uuid;not null;index" json:"category_id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
