package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/shubhanshu5320/medium-blog-backend/internal/api"
	"github.com/shubhanshu5320/medium-blog-backend/internal/auth"
	"github.com/shubhanshu5320/medium-blog-backend/internal/db"
	"github.com/shubhanshu5320/medium-blog-backend/internal/middleware"
	"github.com/shubhanshu5320/medium-blog-backend/internal/store"
	"github.com/shubhanshu5320/medium-blog-backend/pkg/database"
)

func main() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}
	if err := auth.ValidateSecret(jwtSecret); err != nil {
		log.Fatalf("JWT_SECRET is not usable: %v", err)
	}

	dbpool, err := database.NewPool(context.Background())
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer dbpool.Close()

	log.Println("Successfully connected to the database!")

	// 初始化 DB Queries 和 Store
	queries := db.New(dbpool)
	postStore := store.NewPostStore(queries)

	// 初始化 Handler
	handler := api.NewBlogHandler(postStore, jwtSecret)

	// 初始化 Gin Router
	router := gin.Default()
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.HostHeaderValidation(os.Getenv("EXPECTED_HOST")))
	handler.RegisterRoutes(router)

	// 健康檢查路由
	router.GET("/healthz", func(c *gin.Context) {
		if err := dbpool.Ping(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "Database connection is down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "Database connection is healthy"})
	})

	backendPort := os.Getenv("BACKEND_PORT")
	if backendPort == "" {
		backendPort = "8080"
	}

	log.Printf("Starting server on :%s", backendPort)
	if err := router.Run(":" + backendPort); err != nil {
		log.Fatal(err)
	}
}
