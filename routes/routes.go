package routes

import (
	"net/http"

	"github.com/mdtoufiquea/Smart-dine-server/configs"
	"github.com/mdtoufiquea/Smart-dine-server/controllers"
	"github.com/mdtoufiquea/Smart-dine-server/middlewares"
	"github.com/mdtoufiquea/Smart-dine-server/services"
	"github.com/mdtoufiquea/Smart-dine-server/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, feed *ws.OrderFeed) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Smart Dine server is running perfectly!")
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuController(db, services.NewRatingService(db), feed)
	orderCtrl := controllers.NewOrderController(db, feed)
	payCtrl := controllers.NewPaymentController(services.NewStripePayments(cfg.StripeSecretKey))
	authCtrl := controllers.NewAuthController(db, cfg.JWTSecret, cfg.JWTTTL)

	// Users
	r.GET("/users", userCtrl.List)
	r.GET("/users/:email", userCtrl.GetByEmail)
	r.POST("/users", userCtrl.Register)
	r.PATCH("/users/role/:id", userCtrl.UpdateRole)
	r.DELETE("/users/:id", userCtrl.Delete)

	// Menus
	r.GET("/menus", menuCtrl.List)
	r.POST("/menus", menuCtrl.Create)
	r.PUT("/menus/:id", menuCtrl.Update)
	r.DELETE("/menus/:id", menuCtrl.Delete)
	r.GET("/menus/top", menuCtrl.Top)
	r.PATCH("/menus/rating/:orderId", menuCtrl.Rate)

	// Orders
	r.POST("/orders", orderCtrl.Create)
	r.GET("/orders", orderCtrl.List)
	r.GET("/orders/my", orderCtrl.ListMine)
	r.PATCH("/orders/confirm/:id", orderCtrl.Confirm)

	// Payments
	r.POST("/create-payment-intent", payCtrl.CreateIntent)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Live order feed for the admin dashboard
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret, "admin"), feed.HandleWebSocket)
}
