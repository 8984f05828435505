// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"productshop/internal/authz"
	"productshop/internal/cart"
	"productshop/internal/config"
	"productshop/internal/handlers"
	"productshop/internal/middleware"
	"productshop/internal/services"
	"productshop/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config, carts *cart.Store, offerService *services.OfferService) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	productService := services.NewProductService(db)
	orderService := services.NewOrderService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService, userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	cartHandler := handlers.NewCartHandler(carts, productService, orderService)
	orderHandler := handlers.NewOrderHandler(orderService)
	homeHandler := handlers.NewHomeHandler(categoryService, offerService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.Authenticate())
	r.Use(middleware.Authorize(authz.NewTable(authz.DefaultRules())))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
		}

		// Storefront routes
		v1.GET("/home", homeHandler.Home)
		v1.GET("/offers", homeHandler.GetOffers)

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/fetch", categoryHandler.GetCategories)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.POST("", categoryHandler.CreateCategory)
			categories.PUT("/:id", categoryHandler.EditCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/fetch/:category", productHandler.FetchByCategory)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", middleware.UploadRateLimit(), productHandler.CreateProduct)
			products.PUT("/:id", middleware.UploadRateLimit(), productHandler.EditProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		// Cart routes
		cartRoutes := v1.Group("/cart")
		{
			cartRoutes.POST("/add-product", cartHandler.AddProduct)
			cartRoutes.DELETE("/remove-product", cartHandler.RemoveProduct)
			cartRoutes.GET("/details", cartHandler.Details)
			cartRoutes.POST("/checkout", cartHandler.Checkout)
		}

		// Order routes
		orders := v1.Group("/orders")
		{
			orders.GET("/all", orderHandler.GetAllOrders)
			orders.GET("/my", orderHandler.GetMyOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/profile", userHandler.GetProfile)
			users.PUT("/profile", userHandler.EditProfile)
			users.POST("/set-user/:id", userHandler.SetUser)
			users.POST("/set-moderator/:id", userHandler.SetModerator)
			users.POST("/set-admin/:id", userHandler.SetAdmin)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
