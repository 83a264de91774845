package controllers

import (
	"errors"
	"strconv"

	"github.com/mdtoufiquea/Smart-dine-server/entity"
	"github.com/mdtoufiquea/Smart-dine-server/pkg/resp"
	"github.com/mdtoufiquea/Smart-dine-server/services"
	"github.com/mdtoufiquea/Smart-dine-server/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	DB      *gorm.DB
	Ratings *services.RatingService
	Feed    *ws.OrderFeed
}

func NewMenuController(db *gorm.DB, ratings *services.RatingService, feed *ws.OrderFeed) *MenuController {
	return &MenuController{DB: db, Ratings: ratings, Feed: feed}
}

// GET /menus
func (ctl *MenuController) List(c *gin.Context) {
	var menus []entity.Menu
	if err := ctl.DB.Find(&menus).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menus)
}

type CreateMenuRequest struct {
	Name     string  `json:"name" binding:"required"`
	Image    string  `json:"image" binding:"required"`
	Category string  `json:"category"`
	Recipe   string  `json:"recipe"`
	Price    float64 `json:"price"`
}

// POST /menus
func (ctl *MenuController) Create(c *gin.Context) {
	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Name and image are required")
		return
	}

	menu := entity.Menu{
		Name:     req.Name,
		Image:    req.Image,
		Category: req.Category,
		Recipe:   req.Recipe,
		Price:    req.Price,
	}
	if err := ctl.DB.Create(&menu).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, menu)
}

// menuColumns maps the JSON field names a client may PUT to the columns
// they are allowed to touch. Rating aggregates are never client-writable.
var menuColumns = map[string]string{
	"name":     "name",
	"image":    "image",
	"category": "category",
	"recipe":   "recipe",
	"price":    "price",
}

// PUT /menus/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req map[string]any
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	for k, v := range req {
		if col, ok := menuColumns[k]; ok {
			fields[col] = v
		}
	}
	if len(fields) == 0 {
		resp.BadRequest(c, "no updatable fields")
		return
	}

	res := ctl.DB.Model(&entity.Menu{}).
		Where("id = ?", uint(id)).
		Updates(fields)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	resp.OK(c, gin.H{"updated": res.RowsAffected})
}

// DELETE /menus/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := ctl.DB.Delete(&entity.Menu{}, uint(id))
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	resp.OK(c, gin.H{"deleted": res.RowsAffected})
}

// GET /menus/top
func (ctl *MenuController) Top(c *gin.Context) {
	var menus []entity.Menu
	if err := ctl.DB.
		Order("avg_rating DESC").
		Limit(9).
		Find(&menus).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menus)
}

// PATCH /menus/rating/:orderId
func (ctl *MenuController) Rate(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("orderId"))

	var req struct {
		// required rejects a zero rating, matching the client contract
		Rating float64 `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Rating required")
		return
	}

	order, err := ctl.Ratings.RateOrder(uint(orderID), req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "Order not found")
		case errors.Is(err, services.ErrAlreadyRated):
			resp.BadRequest(c, "Already rated")
		default:
			resp.ServerError(c, err)
		}
		return
	}

	if ctl.Feed != nil {
		ctl.Feed.Publish("order_rated", order)
	}
	resp.OK(c, gin.H{"success": true})
}
