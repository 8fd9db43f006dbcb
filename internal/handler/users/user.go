// File: internal/handler/users/user.go
package users

import (
	"net/http"

	"project-board/internal/api"
	"project-board/internal/cache"
	"project-board/internal/database"
	"project-board/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	createUser        = service.CreateUser
	listUsers         = service.ListUsers
	getUser           = service.GetUser
	updateUser        = service.UpdateUser
	deactivateUser    = service.DeactivateUser
	searchUserByEmail = service.SearchUserByEmail
	checkEmail        = service.CheckEmail
)

func respond(c echo.Context, r *api.Result) error {
	if r.Success {
		return c.JSON(http.StatusOK, r)
	}
	return c.JSON(http.StatusBadRequest, r)
}

// @Summary     Create a user
// @Description Creates an account with the default secret derived from the birth date; email and CPF must be unused
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.CreateUserRequest true "new user"
// @Success     200 {object} api.Result{data=api.UserResponse}
// @Failure     400 {object} api.Result
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return respond(c, api.Fail("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return respond(c, api.Fail(err.Error()))
		}
		return respond(c, createUser(c.Request().Context(), db, req))
	}
}

// @Summary     List users
// @Description Returns every active user
// @Tags        users
// @Produce     json
// @Success     200 {object} api.Result{data=[]api.UserResponse}
// @Failure     400 {object} api.Result
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		return respond(c, listUsers(c.Request().Context(), db))
	}
}

// @Summary     Get a user by id
// @Description Served from the cache when a fresh entry exists
// @Tags        users
// @Produce     json
// @Param       id path string true "user id"
// @Success     200 {object} api.Result{data=api.UserResponse}
// @Failure     400 {object} api.Result
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		return respond(c, getUser(c.Request().Context(), db, rdb, c.Param("id")))
	}
}

// @Summary     Update a user
// @Description Updates name, email and phone; the email must stay unique
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id path string true "user id"
// @Param       request body api.UpdateUserRequest true "profile fields"
// @Success     200 {object} api.Result{data=api.UserResponse}
// @Failure     400 {object} api.Result
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return respond(c, api.Fail("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return respond(c, api.Fail(err.Error()))
		}
		return respond(c, updateUser(c.Request().Context(), db, rdb, c.Param("id"), req))
	}
}

// @Summary     Deactivate a user
// @Description Soft delete; repeating it succeeds without further changes
// @Tags        users
// @Produce     json
// @Param       id path string true "user id"
// @Success     200 {object} api.Result
// @Failure     400 {object} api.Result
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		return respond(c, deactivateUser(c.Request().Context(), db, rdb, c.Param("id")))
	}
}

// @Summary     Search a user by email
// @Tags        users
// @Produce     json
// @Param       email query string true "exact email"
// @Success     200 {object} api.Result{data=api.UserResponse}
// @Failure     400 {object} api.Result
// @Router      /users/search [get]
func SearchUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.QueryParam("email")
		if email == "" {
			return respond(c, api.Fail("email is required"))
		}
		return respond(c, searchUserByEmail(c.Request().Context(), db, email))
	}
}

// @Summary     Check email availability
// @Tags        users
// @Produce     json
// @Param       email query string true "email"
// @Success     200 {object} api.Result{data=api.CheckEmailResponse}
// @Failure     400 {object} api.Result
// @Router      /users/check-email [get]
func CheckEmailHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.QueryParam("email")
		if email == "" {
			return respond(c, api.Fail("email is required"))
		}
		return respond(c, checkEmail(c.Request().Context(), db, email))
	}
}
