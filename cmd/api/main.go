package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/feateixeira/serve-wise-hub/internal/auth"
	"github.com/feateixeira/serve-wise-hub/internal/catalog"
	"github.com/feateixeira/serve-wise-hub/internal/costs"
	"github.com/feateixeira/serve-wise-hub/internal/customer"
	"github.com/feateixeira/serve-wise-hub/internal/dashboard"
	"github.com/feateixeira/serve-wise-hub/internal/db"
	"github.com/feateixeira/serve-wise-hub/internal/establishment"
	"github.com/feateixeira/serve-wise-hub/internal/middleware"
	"github.com/feateixeira/serve-wise-hub/internal/pos"
	"github.com/feateixeira/serve-wise-hub/internal/site"
	"github.com/feateixeira/serve-wise-hub/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	rdb := db.ConnectRedis()
	if rdb != nil {
		defer rdb.Close()
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── PUBLIC SITE ─────────────────────────
	siteRepo := site.NewPostgresRepository(pgDB)
	siteService := site.NewService(siteRepo)
	siteHandler := site.NewHandler(siteService)

	siteGroup := r.Group("/site")
	{
		siteGroup.GET("/plans", siteHandler.ListPlans)
		siteGroup.POST("/contact", siteHandler.CreateLead)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	establishmentRepo := establishment.NewPostgresRepository(pgDB)
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	costsRepo := costs.NewPostgresRepository(pgDB)
	orderRepo := pos.NewPostgresOrderRepository(pgDB)
	customerRepo := customer.NewPostgresRepository(pgDB)
	dashboardRepo := dashboard.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	establishmentService := establishment.NewService(establishmentRepo, r2Client)
	catalogService := catalog.NewService(catalogRepo, r2Client, rdb)
	costsService := costs.NewService(costsRepo)
	posService := pos.NewService(orderRepo, catalogRepo, catalogService, establishmentRepo)
	customerService := customer.NewService(customerRepo)
	dashboardService := dashboard.NewService(dashboardRepo, establishmentRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	establishmentHandler := establishment.NewHandler(establishmentService)
	catalogHandler := catalog.NewHandler(catalogService)
	costsHandler := costs.NewHandler(costsService)
	posHandler := pos.NewHandler(posService)
	customerHandler := customer.NewHandler(customerService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// Every back-office route runs behind auth and tenant resolution.
	backoffice := r.Group("")
	backoffice.Use(
		middleware.AuthMiddleware(),
		middleware.RequireEstablishment(establishmentRepo),
	)

	// ───────────────────────── SETTINGS ROUTES ─────────────────────────
	settings := backoffice.Group("/settings")
	{
		settings.GET("/establishment", establishmentHandler.Get)
		settings.PUT("/establishment", establishmentHandler.Update)
		settings.POST("/establishment/logo", establishmentHandler.UploadLogo)
		settings.GET("/profile", establishmentHandler.GetProfile)
		settings.PUT("/profile", establishmentHandler.UpdateProfile)
	}

	// ───────────────────────── CATALOG ROUTES ─────────────────────────
	products := backoffice.Group("/products")
	{
		products.GET("", catalogHandler.ListProducts)
		products.POST("", catalogHandler.CreateProduct)
		products.PUT("/:id", catalogHandler.UpdateProduct)
		products.DELETE("/:id", catalogHandler.DeleteProduct)
		products.POST("/:id/image", catalogHandler.UploadProductImage)
	}

	categories := backoffice.Group("/categories")
	{
		categories.GET("", catalogHandler.ListCategories)
		categories.POST("", catalogHandler.CreateCategory)
		categories.PUT("/:id", catalogHandler.UpdateCategory)
		categories.DELETE("/:id", catalogHandler.DeleteCategory)
	}

	// ───────────────────────── COSTS ROUTES ─────────────────────────
	costsGroup := backoffice.Group("/costs")
	{
		costsGroup.GET("/fixed", costsHandler.ListFixedCosts)
		costsGroup.POST("/fixed", costsHandler.CreateFixedCost)
		costsGroup.PUT("/fixed/:id", costsHandler.UpdateFixedCost)
		costsGroup.DELETE("/fixed/:id", costsHandler.DeleteFixedCost)

		costsGroup.GET("/variable", costsHandler.ListVariableCosts)
		costsGroup.POST("/variable", costsHandler.CreateVariableCost)
		costsGroup.PUT("/variable/:id", costsHandler.UpdateVariableCost)
		costsGroup.DELETE("/variable/:id", costsHandler.DeleteVariableCost)

		costsGroup.GET("/ingredients", costsHandler.ListProductIngredients)
		costsGroup.POST("/ingredients", costsHandler.CreateProductIngredient)
		costsGroup.PUT("/ingredients/:id", costsHandler.UpdateProductIngredient)
		costsGroup.DELETE("/ingredients/:id", costsHandler.DeleteProductIngredient)

		costsGroup.GET("/analysis", costsHandler.ListCostAnalysis)
		costsGroup.GET("/summary", costsHandler.GetSummary)
	}

	// ───────────────────────── POS ROUTES ─────────────────────────
	posGroup := backoffice.Group("/pos")
	{
		posGroup.GET("/catalog", posHandler.GetCatalog)
		posGroup.POST("/checkout", posHandler.Checkout)
		posGroup.GET("/orders", posHandler.ListOrders)
	}

	// ───────────────────────── CUSTOMER ROUTES ─────────────────────────
	customers := backoffice.Group("/customers")
	{
		customers.GET("", customerHandler.ListCustomers)
		customers.POST("", customerHandler.CreateCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
		customers.POST("/:id/groups", customerHandler.AddMember)
		customers.DELETE("/:id/groups/:groupId", customerHandler.RemoveMember)
	}

	groups := backoffice.Group("/customer-groups")
	{
		groups.GET("", customerHandler.ListGroups)
		groups.POST("", customerHandler.CreateGroup)
		groups.PUT("/:id", customerHandler.UpdateGroup)
		groups.DELETE("/:id", customerHandler.DeleteGroup)
	}

	// ───────────────────────── DASHBOARD ─────────────────────────
	backoffice.GET("/dashboard/stats", dashboardHandler.GetStats)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	r.Run(":" + port)
}
