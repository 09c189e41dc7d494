package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-business-ws/internal/handler"
	"go-business-ws/internal/middleware"
	"go-business-ws/internal/model"
	"go-business-ws/internal/repository"
	"go-business-ws/internal/service"
	"go-business-ws/internal/ws"
	"go-business-ws/pkg/database"
	"go-business-ws/pkg/metrics"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

type handlers struct {
	auth      *handler.AuthHandler
	user      *handler.UserHandler
	inventory *handler.InventoryHandler
	warehouse *handler.WarehouseHandler
	order     *handler.OrderHandler
	customer  *handler.CustomerHandler
	dashboard *handler.DashboardHandler
}

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	warehouseRepo := repository.NewWarehouseRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	movementRepo := repository.NewMovementRepo(db)
	userRepo := repository.NewUserRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	invService := service.NewInventoryService(productRepo, wsHub)
	whService := service.NewWarehouseService(warehouseRepo, productRepo, movementRepo, wsHub)
	orderService := service.NewOrderService(orderRepo, productRepo, customerRepo, wsHub)
	customerService := service.NewCustomerService(customerRepo)
	dashService := service.NewDashboardService(productRepo, warehouseRepo, orderRepo, movementRepo)

	seedAdmin(authService)

	h := handlers{
		auth:      handler.NewAuthHandler(authService),
		user:      handler.NewUserHandler(userService),
		inventory: handler.NewInventoryHandler(invService),
		warehouse: handler.NewWarehouseHandler(whService),
		order:     handler.NewOrderHandler(orderService),
		customer:  handler.NewCustomerHandler(customerService),
		dashboard: handler.NewDashboardHandler(dashService),
	}

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Business Management API v1.0",
	})

	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS
	app.Use(metrics.Middleware())

	app.Get("/metrics", metrics.Handler())

	registerRoutes(app, h, authService)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 6. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

func registerRoutes(app *fiber.App, h handlers, auth middleware.TokenValidator) {
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	authRoutes := api.Group("/auth")
	authRoutes.Post("/login", h.auth.Login)
	authRoutes.Post("/validate-token", h.auth.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(auth))
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	protected.Get("/auth/me", h.auth.Me)
	protected.Get("/dashboard/stats", h.dashboard.GetDashboardStats)
	protected.Get("/dashboard/stock-movement", h.dashboard.GetStockMovement)

	// Product Routes (stats before :id so it is not captured as an ID)
	protected.Get("/products", h.inventory.GetProducts)
	protected.Get("/products/stats", h.inventory.GetProductStats)
	protected.Get("/products/categories", h.inventory.GetCategories)
	protected.Get("/products/:id", h.inventory.GetProduct)
	protected.Post("/products", adminOnly, h.inventory.CreateProduct)
	protected.Put("/products/:id", adminOnly, h.inventory.UpdateProduct)
	protected.Delete("/products/:id", adminOnly, h.inventory.DeleteProduct)

	// Warehouse Routes
	protected.Get("/warehouses", h.warehouse.GetWarehouses)
	protected.Get("/warehouses/stats", h.warehouse.GetWarehouseStats)
	protected.Get("/warehouses/:id", h.warehouse.GetWarehouse)
	protected.Get("/warehouses/:id/stocks", h.warehouse.GetStocks)
	protected.Put("/warehouses/:id/stocks", h.warehouse.SetStock)
	protected.Get("/warehouses/:id/movements", h.warehouse.GetMovements)
	protected.Post("/warehouses", adminOnly, h.warehouse.CreateWarehouse)
	protected.Put("/warehouses/:id", adminOnly, h.warehouse.UpdateWarehouse)
	protected.Delete("/warehouses/:id", adminOnly, h.warehouse.DeleteWarehouse)

	// Customer Routes
	protected.Get("/customers", h.customer.GetCustomers)
	protected.Get("/customers/:id", h.customer.GetCustomer)
	protected.Post("/customers", h.customer.CreateCustomer)
	protected.Put("/customers/:id", h.customer.UpdateCustomer)
	protected.Delete("/customers/:id", adminOnly, h.customer.DeleteCustomer)

	// User Routes (admin only)
	users := protected.Group("/users", adminOnly)
	users.Get("/", h.user.GetUsers)
	users.Get("/:id", h.user.GetUser)
	users.Post("/", h.user.CreateUser)
	users.Put("/:id", h.user.UpdateUser)
	users.Delete("/:id", h.user.DeleteUser)

	// Order Routes
	protected.Post("/orders/preview", h.order.PreviewOrder)
	protected.Post("/orders/line-items/sync", h.order.SyncLineItem)
	protected.Get("/orders", h.order.GetOrders)
	protected.Get("/orders/:id", h.order.GetOrder)
	protected.Post("/orders", h.order.CreateOrder)
	protected.Put("/orders/:id", h.order.UpdateOrder)
	protected.Patch("/orders/:id/status", h.order.UpdateStatus)
	protected.Delete("/orders/:id", adminOnly, h.order.DeleteOrder)
}

// seedAdmin creates the first admin account from ADMIN_EMAIL / ADMIN_PASSWORD
func seedAdmin(auth service.AuthService) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("Warning: ADMIN_PASSWORD not set, using the default admin password")
	}

	created, err := auth.EnsureAdmin(email, password)
	if err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
		return
	}
	if created {
		log.Printf("✅ Admin user created: %s", email)
	}
}
