package routes

import (
	"libraryhub/internal/adapters/http/handlers"
	"libraryhub/internal/adapters/persistence/repositories"
	"libraryhub/internal/config"
	"libraryhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	bookRepo := repositories.NewBookRepository(db)
	loanRepo := repositories.NewLoanRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	bookService := services.NewBookService(bookRepo)
	loanService := services.NewLoanService(userRepo, bookRepo, loanRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	userHandler := handlers.NewUserHandler(userService)
	bookHandler := handlers.NewBookHandler(bookService)
	loanHandler := handlers.NewLoanHandler(loanService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	setupUserRoutes(apiV1.Group("/users"), userHandler, loanHandler)
	setupBookRoutes(apiV1.Group("/books"), bookHandler, loanHandler)
	setupLoanRoutes(apiV1.Group("/loans"), loanHandler)
}

// setupUserRoutes configures user routes
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler, loanHandler *handlers.LoanHandler) {
	router.Post("/", handler.Register)
	router.Get("/", handler.List)
	router.Get("/:id", handler.GetByID)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
	router.Get("/:id/loans", loanHandler.ListByUser)
}

// setupBookRoutes configures book routes
func setupBookRoutes(router fiber.Router, handler *handlers.BookHandler, loanHandler *handlers.LoanHandler) {
	router.Post("/", handler.Register)
	router.Get("/", handler.List)
	// Registered before /:id so "search" is not matched as an ID
	router.Get("/search", handler.Search)
	router.Get("/:id", handler.GetByID)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
	router.Get("/:id/loans", loanHandler.ListByBook)
}

// setupLoanRoutes configures loan routes
func setupLoanRoutes(router fiber.Router, handler *handlers.LoanHandler) {
	router.Post("/", handler.Create)
	router.Get("/", handler.List)
	router.Get("/:id", handler.GetByID)
	router.Put("/:id/return", handler.Return)
	router.Put("/:id/overdue", handler.MarkOverdue)
}
