package services

import (
	"errors"
	"math"

	"github.com/mdtoufiquea/Smart-dine-server/entity"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrAlreadyRated  = errors.New("order already rated")
)

// RatingService applies a customer rating to an order and folds it into
// the rating aggregates of every menu item in the order's cart.
type RatingService struct {
	DB *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{DB: db}
}

// RateOrder runs the whole aggregation in one transaction so a partial
// failure never leaves a menu half-updated, and two concurrent ratings
// of the same menu item cannot lose an increment.
func (s *RatingService) RateOrder(orderID uint, rating float64) (*entity.Order, error) {
	var order entity.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Cart").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.Rated {
			return ErrAlreadyRated
		}

		seen := make(map[uint]bool, len(order.Cart))
		for _, item := range order.Cart {
			if seen[item.MenuID] {
				continue
			}
			seen[item.MenuID] = true

			res := tx.Model(&entity.Menu{}).
				Where("id = ?", item.MenuID).
				Updates(map[string]any{
					"total_rating": gorm.Expr("total_rating + ?", rating),
					"rating_count": gorm.Expr("rating_count + ?", 1),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// menu was deleted after the order; the snapshot stays valid
				continue
			}

			var m entity.Menu
			if err := tx.First(&m, item.MenuID).Error; err != nil {
				return err
			}
			avg := math.Round(m.TotalRating/float64(m.RatingCount)*10) / 10
			if err := tx.Model(&m).Update("avg_rating", avg).Error; err != nil {
				return err
			}
		}

		order.Rated = true
		order.Rating = &rating
		return tx.Model(&entity.Order{}).
			Where("id = ?", order.ID).
			Updates(map[string]any{"rated": true, "rating": rating}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
