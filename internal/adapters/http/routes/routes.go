package routes

import (
	"nile-backoffice/internal/adapters/http/handlers"
	"nile-backoffice/internal/adapters/http/middleware"
	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/adapters/persistence/repositories"
	"nile-backoffice/internal/config"
	"nile-backoffice/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)

	// Travel operations repositories
	tripRepo := repositories.NewTripRepository(db)
	visaRepo := repositories.NewVisaRepository(db)
	bagRepo := repositories.NewBagRepository(db)
	balloonRepo := repositories.NewBalloonRepository(db)
	transferRepo := repositories.NewTransferRepository(db)

	// Contracting repositories
	contractRepo := repositories.NewHotelContractRepository(db)
	packageRepo := repositories.NewPackageRepository(db)
	itineraryRepo := repositories.NewItineraryRepository(db)
	scheduleRepo := repositories.NewGuideScheduleRepository(db)

	// Accounting repositories
	accountRepo := repositories.NewAccountRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	safeRepo := repositories.NewSafeRepository(db)
	bankRepo := repositories.NewBankRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, roleRepo, cfg)
	userService := services.NewUserService(userRepo, roleRepo)
	roleService := services.NewRoleService(roleRepo, userRepo)
	reservationService := services.NewReservationService(reservationRepo)
	statsService := services.NewStatisticsService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	roleHandler := handlers.NewRoleHandler(roleService)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	customerHandler := handlers.NewCustomerHandler(customerRepo)
	travelHandler := handlers.NewTravelHandler(tripRepo, visaRepo, bagRepo, balloonRepo, transferRepo)
	contractHandler := handlers.NewContractHandler(contractRepo, packageRepo, itineraryRepo, scheduleRepo)
	accountingHandler := handlers.NewAccountingHandler(accountRepo, transactionRepo, safeRepo, bankRepo)
	statsHandler := handlers.NewStatisticsHandler(statsService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	api := app.Group("/api")
	api.Get("/health", healthHandler.HealthCheck)

	// Auth routes (public endpoints rate limited)
	authRoutes := api.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg, userRepo)

	// Everything below requires a valid token
	protected := api.Group("", middleware.AuthMiddleware(cfg, userRepo))

	// Dashboard statistics
	protected.Get("/statistics", middleware.RequirePermission(models.PermViewDashboard), statsHandler.GetStatistics)

	// Front office
	setupReservationRoutes(protected.Group("/reservations"), reservationHandler)
	setupCustomerRoutes(protected.Group("/customers"), customerHandler)

	// Travel operations
	setupTravelRoutes(protected, travelHandler)

	// Contracting
	setupContractRoutes(protected, contractHandler)

	// Accounting
	setupAccountingRoutes(protected, accountingHandler)

	// Administration
	setupUserRoutes(protected.Group("/users"), userHandler)
	setupRoleRoutes(protected.Group("/roles"), roleHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config, userRepo repositories.UserRepository) {
	// Public routes (5 req/min/IP)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg, userRepo), handler.Me)
	router.Put("/updatepassword", middleware.AuthMiddleware(cfg, userRepo), handler.UpdatePassword)
	router.Put("/updateprofile", middleware.AuthMiddleware(cfg, userRepo), handler.UpdateProfile)
}

// setupReservationRoutes configures reservation routes
func setupReservationRoutes(router fiber.Router, handler *handlers.ReservationHandler) {
	view := middleware.RequirePermission(models.PermViewReservations)
	edit := middleware.RequirePermission(models.PermEditReservations)
	remove := middleware.RequirePermission(models.PermDeleteReservations)

	router.Get("/", view, handler.ListReservations)
	router.Get("/stats", view, handler.GetReservationStats)
	router.Get("/:id", view, handler.GetReservation)
	router.Post("/", edit, handler.CreateReservation)
	router.Put("/:id", edit, handler.UpdateReservation)
	router.Post("/:id/duplicate", edit, handler.DuplicateReservation)
	router.Delete("/:id", remove, handler.DeleteReservation)
	router.Post("/bulk-delete", remove, handler.BulkDeleteReservations)
}

// setupCustomerRoutes configures customer routes
func setupCustomerRoutes(router fiber.Router, handler *handlers.CustomerHandler) {
	view := middleware.RequirePermission(models.PermViewCustomers)
	edit := middleware.RequirePermission(models.PermEditCustomers)

	router.Get("/", view, handler.ListCustomers)
	router.Get("/:id", view, handler.GetCustomer)
	router.Post("/", edit, handler.CreateCustomer)
	router.Put("/:id", edit, handler.UpdateCustomer)
	router.Delete("/:id", edit, handler.DeleteCustomer)
}

// setupTravelRoutes configures trip, visa, bag, balloon and transfer routes
func setupTravelRoutes(router fiber.Router, handler *handlers.TravelHandler) {
	// Trips
	viewTrips := middleware.RequirePermission(models.PermViewTrips)
	editTrips := middleware.RequirePermission(models.PermEditTrips)

	trips := router.Group("/trips")
	trips.Get("/", viewTrips, handler.ListTrips)
	trips.Get("/:id", viewTrips, handler.GetTrip)
	trips.Post("/", editTrips, handler.CreateTrip)
	trips.Put("/:id", editTrips, handler.UpdateTrip)
	trips.Put("/:id/toggle-status", editTrips, handler.ToggleTripStatus)
	trips.Delete("/:id", editTrips, handler.DeleteTrip)

	// Visas
	viewVisas := middleware.RequirePermission(models.PermViewVisas)
	editVisas := middleware.RequirePermission(models.PermEditVisas)

	visas := router.Group("/visas")
	visas.Get("/", viewVisas, handler.ListVisas)
	visas.Get("/types", viewVisas, handler.ListVisaTypes)
	visas.Get("/:id", viewVisas, handler.GetVisa)
	visas.Post("/", editVisas, handler.CreateVisa)
	visas.Put("/:id", editVisas, handler.UpdateVisa)
	visas.Delete("/:id", editVisas, handler.DeleteVisa)

	// Operations: bags, balloons, airport transfers
	viewOps := middleware.RequirePermission(models.PermViewOperations)
	editOps := middleware.RequirePermission(models.PermEditOperations)

	bags := router.Group("/bags")
	bags.Get("/", viewOps, handler.ListBags)
	bags.Get("/:id", viewOps, handler.GetBag)
	bags.Post("/", editOps, handler.CreateBag)
	bags.Put("/:id", editOps, handler.UpdateBag)
	bags.Put("/:id/toggle-entry", editOps, handler.ToggleBagEntry)
	bags.Delete("/:id", editOps, handler.DeleteBag)

	balloons := router.Group("/balloons")
	balloons.Get("/", viewOps, handler.ListBalloons)
	balloons.Get("/:id", viewOps, handler.GetBalloon)
	balloons.Post("/", editOps, handler.CreateBalloon)
	balloons.Put("/:id", editOps, handler.UpdateBalloon)
	balloons.Delete("/:id", editOps, handler.DeleteBalloon)

	transfers := router.Group("/transfers")
	transfers.Get("/", viewOps, handler.ListTransfers)
	transfers.Get("/:id", viewOps, handler.GetTransfer)
	transfers.Post("/", editOps, handler.CreateTransfer)
	transfers.Put("/:id", editOps, handler.UpdateTransfer)
	transfers.Delete("/:id", editOps, handler.DeleteTransfer)
}

// setupContractRoutes configures contracting routes
func setupContractRoutes(router fiber.Router, handler *handlers.ContractHandler) {
	view := middleware.RequirePermission(models.PermViewContracts)
	edit := middleware.RequirePermission(models.PermEditContracts)

	contracts := router.Group("/hotel-contracts")
	contracts.Get("/", view, handler.ListHotelContracts)
	contracts.Get("/:id", view, handler.GetHotelContract)
	contracts.Post("/", edit, handler.CreateHotelContract)
	contracts.Put("/:id", edit, handler.UpdateHotelContract)
	contracts.Delete("/:id", edit, handler.DeleteHotelContract)

	packages := router.Group("/packages")
	packages.Get("/", view, handler.ListPackages)
	packages.Get("/:id", view, handler.GetPackage)
	packages.Post("/", edit, handler.CreatePackage)
	packages.Put("/:id", edit, handler.UpdatePackage)
	packages.Delete("/:id", edit, handler.DeletePackage)

	itineraries := router.Group("/itineraries")
	itineraries.Get("/", view, handler.ListItineraries)
	itineraries.Get("/:id", view, handler.GetItinerary)
	itineraries.Post("/", edit, handler.CreateItinerary)
	itineraries.Put("/:id", edit, handler.UpdateItinerary)
	itineraries.Delete("/:id", edit, handler.DeleteItinerary)

	schedules := router.Group("/guide-schedules")
	schedules.Get("/", view, handler.ListGuideSchedules)
	schedules.Get("/:id", view, handler.GetGuideSchedule)
	schedules.Post("/", edit, handler.CreateGuideSchedule)
	schedules.Put("/:id", edit, handler.UpdateGuideSchedule)
	schedules.Delete("/:id", edit, handler.DeleteGuideSchedule)
}

// setupAccountingRoutes configures accounting routes
func setupAccountingRoutes(router fiber.Router, handler *handlers.AccountingHandler) {
	view := middleware.RequirePermission(models.PermViewAccounting)
	edit := middleware.RequirePermission(models.PermEditAccounting)

	accounts := router.Group("/accounts")
	accounts.Get("/", view, handler.ListAccounts)
	accounts.Get("/:id", view, handler.GetAccount)
	accounts.Post("/", edit, handler.CreateAccount)
	accounts.Put("/:id", edit, handler.UpdateAccount)
	accounts.Delete("/:id", edit, handler.DeleteAccount)

	transactions := router.Group("/transactions")
	transactions.Get("/", view, handler.ListTransactions)
	transactions.Get("/:id", view, handler.GetTransaction)
	transactions.Post("/", edit, handler.CreateTransaction)
	transactions.Put("/:id", edit, handler.UpdateTransaction)
	transactions.Delete("/:id", edit, handler.DeleteTransaction)

	safes := router.Group("/safes")
	safes.Get("/", view, handler.ListSafes)
	safes.Get("/:id", view, handler.GetSafe)
	safes.Post("/", edit, handler.CreateSafe)
	safes.Put("/:id", edit, handler.UpdateSafe)
	safes.Delete("/:id", edit, handler.DeleteSafe)

	banks := router.Group("/banks")
	banks.Get("/", view, handler.ListBanks)
	banks.Get("/:id", view, handler.GetBank)
	banks.Post("/", edit, handler.CreateBank)
	banks.Put("/:id", edit, handler.UpdateBank)
	banks.Delete("/:id", edit, handler.DeleteBank)
}

// setupUserRoutes configures user management routes
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	view := middleware.RequirePermission(models.PermViewUsers)
	edit := middleware.RequirePermission(models.PermEditUsers)
	remove := middleware.RequirePermission(models.PermDeleteUsers)

	router.Get("/", view, handler.ListUsers)
	router.Get("/:id", view, handler.GetUser)
	router.Post("/", edit, handler.CreateUser)
	router.Put("/:id", edit, handler.UpdateUser)
	router.Delete("/:id", remove, handler.DeleteUser)
	router.Post("/bulk-delete", remove, handler.BulkDeleteUsers)
}

// setupRoleRoutes configures role management routes
func setupRoleRoutes(router fiber.Router, handler *handlers.RoleHandler) {
	view := middleware.RequirePermission(models.PermViewRoles)
	edit := middleware.RequirePermission(models.PermEditRoles)

	router.Get("/", view, handler.ListRoles)
	router.Get("/permissions", view, handler.ListPermissions)
	router.Get("/:id", view, handler.GetRole)
	router.Post("/", edit, handler.CreateRole)
	router.Put("/:id", edit, handler.UpdateRole)
	router.Delete("/:id", edit, handler.DeleteRole)
}
