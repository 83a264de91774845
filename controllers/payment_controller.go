package controllers

import (
	"math"

	"github.com/mdtoufiquea/Smart-dine-server/pkg/resp"
	"github.com/mdtoufiquea/Smart-dine-server/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Payments services.IntentCreator
}

func NewPaymentController(payments services.IntentCreator) *PaymentController {
	return &PaymentController{Payments: payments}
}

// POST /create-payment-intent
func (ctl *PaymentController) CreateIntent(c *gin.Context) {
	var req struct {
		TotalPrice float64 `json:"totalPrice" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// BDT to paisa
	amount := int64(math.Round(req.TotalPrice * 100))

	secret, err := ctl.Payments.CreateIntent(amount, "bdt")
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"clientSecret": secret})
}
