// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"project-board/internal/cache"
	"project-board/internal/database"
	"project-board/internal/handler"
	"project-board/internal/handler/auth"
	"project-board/internal/handler/projects"
	"project-board/internal/handler/users"
	"project-board/internal/worker"
)

// Setup registers every route.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	// Health probes live outside the API prefix.
	e.GET("/health", handler.HealthHandler())
	e.GET("/health/database", handler.DatabaseHealthHandler(db, rdb))

	api := e.Group("/api")

	api.POST("/auth/login", auth.LoginHandler(db, rdb, wp))
	api.POST("/auth/change-password-first-access", auth.ChangePasswordHandler(db, rdb))
	api.GET("/auth/check-cpf", auth.CheckCPFHandler(db))

	apiUsers := api.Group("/users")
	apiUsers.POST("", users.CreateUserHandler(db))
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.GET("/search", users.SearchUserHandler(db))
	apiUsers.GET("/check-email", users.CheckEmailHandler(db))
	apiUsers.GET("/:id", users.GetUserHandler(db, rdb))
	apiUsers.PUT("/:id", users.UpdateUserHandler(db, rdb))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db, rdb))

	apiProjects := api.Group("/projects")
	apiProjects.POST("", projects.CreateProjectHandler(db))
	apiProjects.GET("", projects.ListProjectsHandler(db))
	apiProjects.GET("/:id", projects.GetProjectHandler(db))
	apiProjects.PUT("/:id", projects.UpdateProjectHandler(db))
	apiProjects.PATCH("/:id/status", projects.UpdateProjectStatusHandler(db))
	apiProjects.DELETE("/:id", projects.DeleteProjectHandler(db))
}
