// File: internal/service/user.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"project-board/internal/api"
	"project-board/internal/cache"
	"project-board/internal/database"
	"project-board/internal/model"
	"project-board/internal/store"

	"github.com/jackc/pgx/v5"
)

const userCacheTTL = 5 * time.Minute

var (
	getUserByID        = store.GetUserByID
	getUserByEmail     = store.GetUserByEmail
	listUsers          = store.ListUsers
	createUser         = store.CreateUser
	updateUser         = store.UpdateUser
	updateUserPassword = store.UpdateUserPassword
	deactivateUser     = store.DeactivateUser
	userEmailTaken     = store.UserEmailTaken
	userCPFTaken       = store.UserCPFTaken
)

func userCacheKey(userID string) string { return "user:" + userID }

// failFrom turns a store error into a failure outcome: a missing row gets the
// given message, anything else carries the error text.
func failFrom(err error, notFound string) *api.Result {
	if errors.Is(err, pgx.ErrNoRows) {
		return api.Fail(notFound)
	}
	return api.Fail(err.Error())
}

// CreateUser checks email and CPF uniqueness, then creates the account with
// the default secret and the first-access flag raised.
func CreateUser(ctx context.Context, db database.DB, req api.CreateUserRequest) *api.Result {
	email := strings.ToLower(req.Email)
	cpf := NormalizeCPF(req.CPF)
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return api.Fail("invalid birth date")
	}

	taken, err := userEmailTaken(ctx, db, email, "")
	if err != nil {
		return api.Fail(err.Error())
	}
	if taken {
		return api.Fail("email already in use")
	}
	taken, err = userCPFTaken(ctx, db, cpf)
	if err != nil {
		return api.Fail(err.Error())
	}
	if taken {
		return api.Fail("cpf already in use")
	}

	u := model.NewUser(req.Name, email, req.Phone, cpf, birthDate, HashPassword(DefaultPassword(birthDate)))
	if err := createUser(ctx, db, u); err != nil {
		return api.Fail(err.Error())
	}
	return api.Ok(api.NewUserResponse(u))
}

// ListUsers returns every active user.
func ListUsers(ctx context.Context, db database.DB) *api.Result {
	users, err := listUsers(ctx, db)
	if err != nil {
		return api.Fail(err.Error())
	}
	resp := make([]api.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, api.NewUserResponse(u))
	}
	return api.Ok(resp)
}

// GetUser serves the user from the cache when possible, falling back to the
// store and repopulating the entry.
func GetUser(ctx context.Context, db database.DB, c cache.Cache, userID string) *api.Result {
	var cached api.UserResponse
	if err := cache.GetJSON(ctx, c, userCacheKey(userID), &cached); err == nil {
		return api.Ok(cached)
	}
	u, err := getUserByID(ctx, db, userID)
	if err != nil {
		return failFrom(err, "user not found")
	}
	resp := api.NewUserResponse(u)
	_ = cache.SetJSON(ctx, c, userCacheKey(userID), resp, userCacheTTL)
	return api.Ok(resp)
}

// UpdateUser mutates the profile fields after re-checking email uniqueness,
// then drops the cache entry.
func UpdateUser(ctx context.Context, db database.DB, c cache.Cache, userID string, req api.UpdateUserRequest) *api.Result {
	u, err := getUserByID(ctx, db, userID)
	if err != nil {
		return failFrom(err, "user not found")
	}
	if !u.Active {
		return api.Fail("user is deactivated")
	}

	email := strings.ToLower(req.Email)
	taken, err := userEmailTaken(ctx, db, email, u.ID)
	if err != nil {
		return api.Fail(err.Error())
	}
	if taken {
		return api.Fail("email already in use")
	}

	u.Update(req.Name, email, req.Phone)
	if err := updateUser(ctx, db, u); err != nil {
		return api.Fail(err.Error())
	}
	c.Del(ctx, userCacheKey(u.ID))
	return api.Ok(api.NewUserResponse(u))
}

// DeactivateUser soft-deletes the account. Deactivating an already inactive
// account is an idempotent success with no state change.
func DeactivateUser(ctx context.Context, db database.DB, c cache.Cache, userID string) *api.Result {
	u, err := getUserByID(ctx, db, userID)
	if err != nil {
		return failFrom(err, "user not found")
	}
	if !u.Active {
		return api.NoContent()
	}
	u.Deactivate()
	if err := deactivateUser(ctx, db, u); err != nil {
		return api.Fail(err.Error())
	}
	c.Del(ctx, userCacheKey(u.ID))
	return api.NoContent()
}

// SearchUserByEmail looks an account up by its exact (lowercased) email.
func SearchUserByEmail(ctx context.Context, db database.DB, email string) *api.Result {
	u, err := getUserByEmail(ctx, db, strings.ToLower(email))
	if err != nil {
		return failFrom(err, "user not found")
	}
	return api.Ok(api.NewUserResponse(u))
}

// CheckEmail reports whether any account already holds the email.
func CheckEmail(ctx context.Context, db database.DB, email string) *api.Result {
	taken, err := userEmailTaken(ctx, db, strings.ToLower(email), "")
	if err != nil {
		return api.Fail(err.Error())
	}
	return api.Ok(api.CheckEmailResponse{Exists: taken})
}
