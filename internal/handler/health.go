// File: internal/handler/health.go
package handler

import (
	"net/http"

	"project-board/internal/api"
	"project-board/internal/cache"
	"project-board/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthResponse is the liveness payload.
// swagger:model handler.HealthResponse
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// HealthHandler reports liveness.
// @Summary     Health check
// @Description Static liveness probe, always succeeds while the process serves requests
// @Tags        health
// @Produce     json
// @Success     200 {object} api.Result
// @Router      /health [get]
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.Ok(HealthResponse{Status: "ok"}))
	}
}

// DatabaseHealthHandler pings the backing stores.
// @Summary     Database health check
// @Description Pings postgres and redis; 500 when either does not answer
// @Tags        health
// @Produce     json
// @Success     200 {object} api.Result
// @Failure     500 {object} api.Result
// @Router      /health/database [get]
func DatabaseHealthHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("database unhealthy"))
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("cache unhealthy"))
		}
		return c.JSON(http.StatusOK, api.Ok(HealthResponse{Status: "ok"}))
	}
}
