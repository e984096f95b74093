package routes

import (
	"computer-aid/config"
	"computer-aid/controllers"
	"computer-aid/middleware"
	"computer-aid/services"
	"computer-aid/session"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Config   *config.Config
	Sessions *session.Manager
	Catalog  *services.CatalogService
	Auth     *services.AuthService
}

func SetupRoutes(router *gin.Engine, d *Deps) {
	catalogCtrl := controllers.NewCatalogController(d.Catalog, d.Sessions, d.Config.WhatsAppNumber)
	cartCtrl := controllers.NewCartController(d.Catalog, d.Sessions, d.Config.WhatsAppNumber)
	authCtrl := controllers.NewAuthController(d.Auth, d.Sessions, d.Config.JWTSecret, int(d.Auth.TokenExpiry().Seconds()))
	adminCtrl := controllers.NewAdminController(d.Catalog, d.Sessions)

	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/", catalogCtrl.Home)
	router.GET("/category/:key", catalogCtrl.Category)
	router.GET("/search", catalogCtrl.Search)
	router.GET("/product/:id", catalogCtrl.ProductDetail)

	router.GET("/cart", cartCtrl.View)
	router.POST("/cart/add/:id", cartCtrl.Add)
	router.POST("/cart/remove/:id", cartCtrl.Remove)
	router.GET("/cart/checkout", cartCtrl.Checkout)

	router.GET("/admin/login", authCtrl.LoginForm)
	router.POST("/admin/login", authCtrl.Login)
	router.GET("/admin/logout", authCtrl.Logout)

	admin := router.Group("/admin")
	admin.Use(middleware.AdminRequired(d.Config.JWTSecret, d.Sessions))
	{
		admin.GET("", adminCtrl.Dashboard)
		admin.GET("/product/add", adminCtrl.AddForm)
		admin.POST("/product/add", adminCtrl.Create)
		admin.GET("/product/edit/:id", adminCtrl.EditForm)
		admin.POST("/product/edit/:id", adminCtrl.Update)
		admin.POST("/product/delete/:id", adminCtrl.Delete)
	}

	router.Static("/static", "./static")
	if d.Config.StorageDriver == config.StorageLocal {
		router.Static("/uploads", d.Config.UploadDir)
	}
}
