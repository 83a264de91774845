package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	Name     string  `gorm:"not null" json:"name"`
	Image    string  `gorm:"not null" json:"image"`
	Category string  `json:"category"`
	Recipe   string  `json:"recipe"`
	Price    float64 `json:"price"`

	// rating aggregates, recomputed when an order is rated
	TotalRating float64 `json:"totalRating"`
	RatingCount int64   `json:"ratingCount"`
	AvgRating   float64 `json:"avgRating"` // TotalRating/RatingCount, one decimal
}
