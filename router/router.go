package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pursaklar/api"
	"pursaklar/config"
	_ "pursaklar/docs"
	"pursaklar/middleware"
	"pursaklar/service"
	"pursaklar/store"
	"pursaklar/web"
)

// SetupRouter rotaları kurar. Store main'de açılır ve buradan servislere
// referans olarak dağıtılır.
func SetupRouter(cfg *config.Config, st *store.Store) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())

	// gömülü vitrin sayfası
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "Sayfa yüklenemedi")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	catalogHandler := api.NewCatalogHandler(service.NewCatalogQueryService(st))
	orderHandler := api.NewOrderHandler(
		service.NewOrderIntakeService(st),
		service.NewOrderNotifier(&cfg.Email),
	)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/categories", catalogHandler.ListCategories)
		apiGroup.GET("/services/:categoryId", catalogHandler.ListServices)
		apiGroup.POST("/orders", orderHandler.Create)
		apiGroup.GET("/orders/:id", orderHandler.Get)
	}

	// işletme sahibi uç noktaları
	adminHandler := api.NewAdminHandler(cfg, st)
	admin := r.Group("/admin")
	{
		admin.POST("/login", middleware.LoginRateLimit(5, time.Minute), adminHandler.Login)

		adminAuth := admin.Group("")
		adminAuth.Use(middleware.JWTAuth())
		{
			adminAuth.GET("/orders", adminHandler.ListOrders)
			adminAuth.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
			adminAuth.GET("/orders/export", adminHandler.ExportOrders)
		}
	}

	// Swagger dokümantasyonu
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// sağlık kontrolü
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS başlıkları
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
