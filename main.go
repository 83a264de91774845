package main

import (
	"fmt"
	"log"

	"github.com/mdtoufiquea/Smart-dine-server/configs"
	"github.com/mdtoufiquea/Smart-dine-server/middlewares"
	"github.com/mdtoufiquea/Smart-dine-server/routes"
	"github.com/mdtoufiquea/Smart-dine-server/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	feed := ws.NewOrderFeed()
	go feed.Run()

	routes.RegisterRoutes(r, db, cfg, feed)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
