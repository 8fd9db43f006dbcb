// File: internal/handler/auth/auth.go
package auth

import (
	"net/http"

	"project-board/internal/api"
	"project-board/internal/cache"
	"project-board/internal/database"
	"project-board/internal/service"
	"project-board/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	login                     = service.Login
	changeFirstAccessPassword = service.ChangeFirstAccessPassword
	checkCPF                  = service.CheckCPF
	recordLogin               = service.RecordLogin
)

func respond(c echo.Context, r *api.Result) error {
	if r.Success {
		return c.JSON(http.StatusOK, r)
	}
	return c.JSON(http.StatusBadRequest, r)
}

// @Summary     Login
// @Description Authenticates a CPF/password pair; the failure message never reveals which condition failed
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "credentials"
// @Success     200 {object} api.Result{data=api.LoginResponse}
// @Failure     400 {object} api.Result
// @Router      /auth/login [post]
func LoginHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return respond(c, api.Fail("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return respond(c, api.Fail(err.Error()))
		}
		res := login(c.Request().Context(), db, req)
		if res.Success {
			if payload, ok := res.Data.(api.LoginResponse); ok && wp != nil {
				wp.Submit(func() { recordLogin(rdb, payload.ID) })
			}
		}
		return respond(c, res)
	}
}

// @Summary     First-access password change
// @Description Rotates the password given the current one; rejects reusing the current or default secret
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.ChangePasswordRequest true "rotation request"
// @Success     200 {object} api.Result
// @Failure     400 {object} api.Result
// @Router      /auth/change-password-first-access [post]
func ChangePasswordHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ChangePasswordRequest
		if err := c.Bind(&req); err != nil {
			return respond(c, api.Fail("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return respond(c, api.Fail(err.Error()))
		}
		return respond(c, changeFirstAccessPassword(c.Request().Context(), db, rdb, req))
	}
}

// @Summary     Check CPF
// @Description Reports whether the CPF is well formed and already registered to an active account
// @Tags        auth
// @Produce     json
// @Param       cpf query string true "CPF, punctuation allowed"
// @Success     200 {object} api.Result{data=api.CheckCPFResponse}
// @Failure     400 {object} api.Result
// @Router      /auth/check-cpf [get]
func CheckCPFHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cpf := c.QueryParam("cpf")
		if cpf == "" {
			return respond(c, api.Fail("cpf is required"))
		}
		return respond(c, checkCPF(c.Request().Context(), db, cpf))
	}
}
