package main

import (
	"context"
	"html/template"
	"log"

	"computer-aid/config"
	"computer-aid/libs"
	"computer-aid/middleware"
	"computer-aid/repositories"
	"computer-aid/routes"
	"computer-aid/services"
	"computer-aid/session"
	"computer-aid/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	defer config.CloseDB(db)

	rdb := config.ConnectRedis(cfg)
	defer config.CloseRedis(rdb)

	images, err := buildImageStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	sessions := session.NewManager(cfg.SessionSecret)
	catalog := services.NewCatalogService(repositories.NewProductRepository(db), images, rdb)
	auth := services.NewAuthService(repositories.NewAdminRepository(db), cfg.JWTSecret, cfg.JWTExpiry)

	if err := auth.EnsureAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	router := gin.Default()
	router.SetFuncMap(template.FuncMap{
		"mwk":      utils.FormatMWK,
		"imageURL": images.Resolve,
	})
	router.LoadHTMLGlob("templates/*.html")
	router.MaxMultipartMemory = cfg.MaxUploadSize
	router.Use(middleware.CORSMiddleware(), middleware.NoCache())

	routes.SetupRoutes(router, &routes.Deps{
		Config:   cfg,
		Sessions: sessions,
		Catalog:  catalog,
		Auth:     auth,
	})

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Environment: %s", cfg.AppEnv)
	log.Printf("Storage driver: %s", cfg.StorageDriver)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func buildImageStore(cfg *config.Config) (libs.ImageStore, error) {
	if cfg.StorageDriver == config.StorageCloudinary {
		return libs.NewCloudinaryImageStore(
			cfg.CloudinaryCloudName,
			cfg.CloudinaryAPIKey,
			cfg.CloudinaryAPISecret,
			cfg.MaxUploadSize,
		)
	}
	return libs.NewLocalImageStore(cfg.UploadDir, cfg.MaxUploadSize)
}
