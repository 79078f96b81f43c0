package main

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"

	"attendo.app/attendo/core"
	"attendo.app/attendo/infrastructure/devops"
	"attendo.app/attendo/model"
	"attendo.app/attendo/web/handlers"
	"attendo.app/attendo/web/handlers/attendance"
	"attendo.app/attendo/web/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Local development keeps its settings in a .env file; deployed
	// environments come configured through SSM.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := devops.LoadServiceConfig(ctx)
	if err != nil {
		log.Fatal(err)
	}

	dm, err := core.New(cfg.DSN, 10)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	if err := dm.Exec(ctx, func(db *gorm.DB) error {
		return db.AutoMigrate(&model.AttendanceRecord{})
	}); err != nil {
		log.Fatal(err)
	}

	jwtSecret, err := base64.StdEncoding.DecodeString(cfg.SigningSecret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	r.GET("/api/attendo/manifest", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":     "1.0.0",
			"description": "Attendo attendance API",
		})
	})

	protected := r.Group("/api/attendo/v1.0")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		attendance.Register(protected, dm)

		protected.POST("/records/:recordId/photos", handlers.UploadRecordPhotosHandler(cfg.PhotoBucket))
		protected.GET("/records/:recordId/photos", handlers.ListRecordPhotosHandler(cfg.PhotoBucket))

		protected.GET("/whoami", func(c *gin.Context) {
			claims, _ := c.Get("claims")
			c.JSON(200, gin.H{"claims": claims})
		})
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
