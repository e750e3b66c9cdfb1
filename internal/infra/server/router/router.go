// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
	"github.com/rooseveltalej/WealthTrackAPI/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	userController        *controller.UserController
	profileController     *controller.ProfileController
	transactionController *controller.TransactionController
	goalController        *controller.GoalController
	dashboardController   *controller.DashboardController
	historyController     *controller.HistoryController
	importController      *controller.ImportController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	userController *controller.UserController,
	profileController *controller.ProfileController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	dashboardController *controller.DashboardController,
	historyController *controller.HistoryController,
	importController *controller.ImportController,
) *Router {
	return &Router{
		healthController:      healthController,
		userController:        userController,
		profileController:     profileController,
		transactionController: transactionController,
		goalController:        goalController,
		dashboardController:   dashboardController,
		historyController:     historyController,
		importController:      importController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth and user routes
		v1.POST("/auth/login", r.userController.Login)
		users := v1.Group("/users")
		{
			users.POST("/register", r.userController.Register)
			users.GET("/:id", r.userController.Get)
		}

		// Profile routes
		profile := v1.Group("/profile")
		{
			profile.GET("/:id", r.profileController.Get)
			profile.PUT("/:id", r.profileController.Update)
		}

		// Income follows a month-replace policy, so POST acts as an upsert
		v1.POST("/income", r.transactionController.UpsertIncome)

		// Categorized ledger records, one route group per kind
		recordKinds := map[string]entity.TransactionKind{
			"/expense":    entity.TransactionKindExpense,
			"/saving":     entity.TransactionKindSaving,
			"/investment": entity.TransactionKindInvestment,
		}
		for path, kind := range recordKinds {
			group := v1.Group(path)
			{
				group.POST("", r.transactionController.Create(kind))
				group.PUT("/:id", r.transactionController.Update(kind))
				group.DELETE("/:id", r.transactionController.Delete(kind))
			}
		}

		// Monthly goals, one route group per kind
		goalKinds := map[string]entity.GoalKind{
			"/goals/expense":    entity.GoalKindExpense,
			"/goals/saving":     entity.GoalKindSaving,
			"/goals/investment": entity.GoalKindInvestment,
		}
		for path, kind := range goalKinds {
			group := v1.Group(path)
			{
				group.POST("", r.goalController.Upsert(kind))
				group.POST("/strict", r.goalController.CreateStrict(kind))
			}
		}

		// Read models
		v1.GET("/dashboard", r.dashboardController.Get)
		v1.GET("/history", r.historyController.Get)

		// Bulk import
		v1.POST("/import/csv", r.importController.Import)
	}
}
