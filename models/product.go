package models

import "time"

type Product struct {
	ID                string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CategoryID        string    `gorm:"type:uuid;not null;index" json:"category_id"`
	SubcategoryID     *string   `gorm:"type:uuid;index" json:"subcategory_id"`
	Name              string    `gorm:"not null" json:"name"`
	Description       string    `json:"description"`
	Price             float64   `gorm:"not null" json:"price"`
	OriginalPrice     *float64  `json:"original_price"`
	Discount          float64   `gorm:"default:0" json:"discount"`
	ImageURL          string    `json:"image_url"`
	AlcoholPercentage *float64  `json:"alcohol_percentage"`
	VolumeML          *int      `json:"volume_ml"`
	OriginCountry     string    `json:"origin_country"`
	IsFeatured        bool      `gorm:"default:false" json:"is_featured"`
	InStock           bool      `gorm:"default:true" json:"in_stock"`
	DisplayOrder      int       `gorm:"default:0" json:"display_order"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
