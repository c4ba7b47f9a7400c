package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Niksiiii/BuConnect/configs"
	"github.com/Niksiiii/BuConnect/middlewares"
	"github.com/Niksiiii/BuConnect/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + seed catalog
	configs.SetupDatabase()
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	authSvc := routes.RegisterRoutes(r, db, cfg)

	// warm the identity cache before taking traffic
	if err := authSvc.Rehydrate(); err != nil {
		log.Fatalf("identity rehydrate failed: %v", err)
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
