package controllers

import (
	"time"

	"github.com/mdtoufiquea/Smart-dine-server/entity"
	"github.com/mdtoufiquea/Smart-dine-server/pkg/resp"
	"github.com/mdtoufiquea/Smart-dine-server/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	DB   *gorm.DB
	Feed *ws.OrderFeed
}

func NewOrderController(db *gorm.DB, feed *ws.OrderFeed) *OrderController {
	return &OrderController{DB: db, Feed: feed}
}

// CartItemIn admits exactly the four snapshot fields; any extra keys a
// client sends are dropped before the order is stored.
type CartItemIn struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

type CreateOrderRequest struct {
	Email      string       `json:"email" binding:"required,email"`
	Name       string       `json:"name"`
	Phone      string       `json:"phone"`
	OrderType  string       `json:"orderType"`
	Address    string       `json:"address"`
	TableNo    string       `json:"tableNo"`
	TotalPrice float64      `json:"totalPrice"`
	Cart       []CartItemIn `json:"cart"`
}

// POST /orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order := entity.Order{
		Email:      req.Email,
		Name:       req.Name,
		Phone:      req.Phone,
		OrderType:  req.OrderType,
		Address:    req.Address,
		TableNo:    req.TableNo,
		TotalPrice: req.TotalPrice,
		Date:       time.Now(),
		// payment is confirmed client-side before this call
		PaymentStatus: "paid",
		Status:        "pending",
		Rating:        nil,
		Rated:         false,
	}
	for _, it := range req.Cart {
		order.Cart = append(order.Cart, entity.CartItem{
			MenuID: it.ID,
			Name:   it.Name,
			Price:  it.Price,
			Image:  it.Image,
		})
	}

	if err := ctl.DB.Create(&order).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	if ctl.Feed != nil {
		ctl.Feed.Publish("order_created", order)
	}
	resp.Created(c, order)
}

// GET /orders
func (ctl *OrderController) List(c *gin.Context) {
	var orders []entity.Order
	if err := ctl.DB.Preload("Cart").Find(&orders).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// MyOrderView is the customer-facing projection; internal fields like
// the record id and rated flag stay server-side.
type MyOrderView struct {
	Rating        *float64          `json:"rating"`
	Name          string            `json:"name"`
	Phone         string            `json:"phone"`
	OrderType     string            `json:"orderType"`
	Cart          []entity.CartItem `json:"cart"`
	Address       string            `json:"address"`
	TableNo       string            `json:"tableNo"`
	Status        string            `json:"status"`
	AdminMessage  string            `json:"adminMessage"`
	PaymentStatus string            `json:"paymentStatus"`
	Date          time.Time         `json:"date"`
}

// GET /orders/my?email=
func (ctl *OrderController) ListMine(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		resp.BadRequest(c, "Email required")
		return
	}

	var orders []entity.Order
	if err := ctl.DB.Preload("Cart").Where("email = ?", email).Find(&orders).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	views := make([]MyOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, MyOrderView{
			Rating:        o.Rating,
			Name:          o.Name,
			Phone:         o.Phone,
			OrderType:     o.OrderType,
			Cart:          o.Cart,
			Address:       o.Address,
			TableNo:       o.TableNo,
			Status:        o.Status,
			AdminMessage:  o.AdminMessage,
			PaymentStatus: o.PaymentStatus,
			Date:          o.Date,
		})
	}
	resp.OK(c, views)
}

// PATCH /orders/confirm/:id
func (ctl *OrderController) Confirm(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res := ctl.DB.Model(&entity.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        "confirmed",
			"admin_message": req.Message,
		})
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}

	if ctl.Feed != nil && res.RowsAffected > 0 {
		ctl.Feed.Publish("order_confirmed", gin.H{"id": id, "adminMessage": req.Message})
	}
	resp.OK(c, gin.H{"updated": res.RowsAffected})
}
