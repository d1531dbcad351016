package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	catalogUC "github.com/gestio-app/gestio/internal/application/catalog/usecases"
	clientUC "github.com/gestio-app/gestio/internal/application/client/usecases"
	projectUC "github.com/gestio-app/gestio/internal/application/project/usecases"
	reportUC "github.com/gestio-app/gestio/internal/application/report/usecases"
	userUC "github.com/gestio-app/gestio/internal/application/user/usecases"
	"github.com/gestio-app/gestio/internal/infrastructure/auth"
	"github.com/gestio-app/gestio/internal/infrastructure/config"
	"github.com/gestio-app/gestio/internal/infrastructure/email"
	"github.com/gestio-app/gestio/internal/infrastructure/repository"
	"github.com/gestio-app/gestio/internal/infrastructure/services/markdown"
	"github.com/gestio-app/gestio/internal/interfaces/http/handlers"
	"github.com/gestio-app/gestio/internal/interfaces/http/middleware"
	"github.com/gestio-app/gestio/internal/shared/logger"
	"github.com/gestio-app/gestio/internal/shared/utils"

	_ "github.com/gestio-app/gestio/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	authHandler    *handlers.AuthHandler
	clientHandler  *handlers.ClientHandler
	productHandler *handlers.ProductHandler
	sellerHandler  *handlers.SellerHandler
	reportHandler  *handlers.ReportHandler
	projectHandler *handlers.ProjectHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	sellerRepo := repository.NewSellerRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	emailService := email.NewSMTPEmailService(&cfg.Email)
	notesRenderer := markdown.NewNotesRenderer()

	authHandler := handlers.NewAuthHandler(
		userUC.NewLoginUseCase(userRepo, jwtSvc, hasher, log),
		userUC.NewGetProfileUseCase(userRepo, log),
	)

	clientHandler := handlers.NewClientHandler(
		clientUC.NewCreateClientUseCase(clientRepo, productRepo, sellerRepo, log),
		clientUC.NewUpdateClientUseCase(clientRepo, productRepo, sellerRepo, log),
		clientUC.NewDeleteClientUseCase(clientRepo, log),
		clientUC.NewGetClientUseCase(clientRepo, productRepo, sellerRepo, notesRenderer, log),
		clientUC.NewListClientsUseCase(clientRepo, productRepo, sellerRepo, log),
		clientUC.NewImportClientsUseCase(clientRepo, productRepo, sellerRepo, log),
		clientUC.NewExportClientsUseCase(clientRepo, productRepo, sellerRepo, log),
	)

	productHandler := handlers.NewProductHandler(
		catalogUC.NewCreateProductUseCase(productRepo, log),
		catalogUC.NewUpdateProductUseCase(productRepo, log),
		catalogUC.NewDeleteProductUseCase(productRepo, clientRepo, log),
		catalogUC.NewListProductsUseCase(productRepo, log),
	)

	sellerHandler := handlers.NewSellerHandler(
		catalogUC.NewCreateSellerUseCase(sellerRepo, log),
		catalogUC.NewUpdateSellerUseCase(sellerRepo, log),
		catalogUC.NewDeleteSellerUseCase(sellerRepo, clientRepo, log),
		catalogUC.NewListSellersUseCase(sellerRepo, log),
	)

	reportHandler := handlers.NewReportHandler(
		reportUC.NewGetDashboardUseCase(clientRepo, productRepo, sellerRepo, log),
		reportUC.NewGetSellerReportsUseCase(clientRepo, productRepo, sellerRepo, log),
		reportUC.NewGetProductSummariesUseCase(clientRepo, productRepo, sellerRepo, log),
		reportUC.NewExportSellerReportsUseCase(clientRepo, productRepo, sellerRepo, log),
		reportUC.NewSendReminderUseCase(clientRepo, productRepo, emailService, log),
	)

	projectHandler := handlers.NewProjectHandler(
		projectUC.NewCreateProjectUseCase(projectRepo, clientRepo, log),
		projectUC.NewUpdateProjectUseCase(projectRepo, taskRepo, clientRepo, log),
		projectUC.NewDeleteProjectUseCase(projectRepo, taskRepo, log),
		projectUC.NewGetProjectUseCase(projectRepo, taskRepo, log),
		projectUC.NewListProjectsUseCase(projectRepo, taskRepo, log),
		projectUC.NewCreateTaskUseCase(projectRepo, taskRepo, log),
		projectUC.NewUpdateTaskUseCase(taskRepo, log),
		projectUC.NewDeleteTaskUseCase(taskRepo, log),
		projectUC.NewListTasksUseCase(projectRepo, taskRepo, log),
	)

	return &Router{
		engine:         engine,
		authHandler:    authHandler,
		clientHandler:  clientHandler,
		productHandler: productHandler,
		sellerHandler:  sellerHandler,
		reportHandler:  reportHandler,
		projectHandler: projectHandler,
		authMiddleware: middleware.NewAuthMiddleware(jwtSvc, log),
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/health", healthCheck)

	api := r.engine.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.GetProfile)
	}

	clients := api.Group("/clients")
	clients.Use(r.authMiddleware.RequireAuth())
	{
		clients.POST("", r.clientHandler.CreateClient)
		clients.GET("", r.clientHandler.ListClients)
		clients.POST("/import", r.clientHandler.ImportClients)
		clients.GET("/export", r.clientHandler.ExportClients)
		clients.GET("/:id", r.clientHandler.GetClient)
		clients.PUT("/:id", r.clientHandler.UpdateClient)
		clients.DELETE("/:id", r.clientHandler.DeleteClient)
	}

	products := api.Group("/products")
	products.Use(r.authMiddleware.RequireAuth())
	{
		products.POST("", r.productHandler.CreateProduct)
		products.GET("", r.productHandler.ListProducts)
		products.PUT("/:id", r.productHandler.UpdateProduct)
		products.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	sellers := api.Group("/sellers")
	sellers.Use(r.authMiddleware.RequireAuth())
	{
		sellers.POST("", r.sellerHandler.CreateSeller)
		sellers.GET("", r.sellerHandler.ListSellers)
		sellers.PUT("/:id", r.sellerHandler.UpdateSeller)
		sellers.DELETE("/:id", r.sellerHandler.DeleteSeller)
	}

	reports := api.Group("/reports")
	reports.Use(r.authMiddleware.RequireAuth())
	{
		reports.GET("/sellers", r.reportHandler.GetSellerReports)
		reports.GET("/sellers/export", r.reportHandler.ExportSellerReports)
		reports.GET("/products", r.reportHandler.GetProductSummaries)
	}

	dashboard := api.Group("/dashboard")
	dashboard.Use(r.authMiddleware.RequireAuth())
	{
		dashboard.GET("", r.reportHandler.GetDashboard)
		dashboard.POST("/reminders/:clientID", r.reportHandler.SendReminder)
	}

	projects := api.Group("/projects")
	projects.Use(r.authMiddleware.RequireAuth())
	{
		projects.POST("", r.projectHandler.CreateProject)
		projects.GET("", r.projectHandler.ListProjects)
		projects.GET("/:id", r.projectHandler.GetProject)
		projects.PUT("/:id", r.projectHandler.UpdateProject)
		projects.DELETE("/:id", r.projectHandler.DeleteProject)
		projects.POST("/:id/tasks", r.projectHandler.CreateTask)
		projects.GET("/:id/tasks", r.projectHandler.ListTasks)
	}

	tasks := api.Group("/tasks")
	tasks.Use(r.authMiddleware.RequireAuth())
	{
		tasks.PUT("/:taskID", r.projectHandler.UpdateTask)
		tasks.DELETE("/:taskID", r.projectHandler.DeleteTask)
	}
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// healthCheck reports service liveness
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} utils.Response
// @Router /health [get]
func healthCheck(c *gin.Context) {
	utils.SuccessResponse(c, 200, "ok", gin.H{"status": "healthy"})
}
