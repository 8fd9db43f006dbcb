// File: internal/service/auth.go
package service

import (
	"context"
	"errors"
	"time"

	"project-board/internal/api"
	"project-board/internal/cache"
	"project-board/internal/database"
	"project-board/internal/store"

	"github.com/jackc/pgx/v5"
)

// InvalidCredentials is the single message returned for every failed login
// condition, so a caller cannot tell an unknown CPF from a wrong password or
// a deactivated account.
const InvalidCredentials = "invalid credentials"

var getUserByCPF = store.GetUserByCPF

// Login checks the credential pair and returns the profile payload. Token
// issuance is deferred: the token field stays empty.
func Login(ctx context.Context, db database.DB, req api.LoginRequest) *api.Result {
	cpf := NormalizeCPF(req.CPF)
	if !ValidCPF(cpf) {
		return api.Fail(InvalidCredentials)
	}
	u, err := getUserByCPF(ctx, db, cpf)
	if err != nil || !u.Active {
		return api.Fail(InvalidCredentials)
	}
	if !CheckPassword(u.PasswordHash, req.Password) {
		return api.Fail(InvalidCredentials)
	}
	return api.Ok(api.LoginResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		FirstAccess: u.FirstAccess,
		Token:       "",
	})
}

// ChangeFirstAccessPassword rotates the password after verifying the current
// one. The new password may be neither the current one nor the default secret
// derived from the birth date; on success the first-access flag is cleared
// and the account's cache entry is dropped.
func ChangeFirstAccessPassword(ctx context.Context, db database.DB, c cache.Cache, req api.ChangePasswordRequest) *api.Result {
	cpf := NormalizeCPF(req.CPF)
	if !ValidCPF(cpf) {
		return api.Fail(InvalidCredentials)
	}
	u, err := getUserByCPF(ctx, db, cpf)
	if err != nil || !u.Active {
		return api.Fail(InvalidCredentials)
	}
	if !CheckPassword(u.PasswordHash, req.CurrentPassword) {
		return api.Fail(InvalidCredentials)
	}
	if req.NewPassword == req.CurrentPassword {
		return api.Fail("new password must differ from the current password")
	}
	if req.NewPassword == DefaultPassword(u.BirthDate) {
		return api.Fail("new password must differ from the default password")
	}
	u.SetPassword(HashPassword(req.NewPassword), false)
	if err := updateUserPassword(ctx, db, u); err != nil {
		return api.Fail(err.Error())
	}
	c.Del(ctx, userCacheKey(u.ID))
	return api.NoContent()
}

// CheckCPF reports whether the CPF is well formed and whether an active
// account already holds it.
func CheckCPF(ctx context.Context, db database.DB, rawCPF string) *api.Result {
	cpf := NormalizeCPF(rawCPF)
	if !ValidCPF(cpf) {
		return api.Ok(api.CheckCPFResponse{Valid: false, Exists: false})
	}
	u, err := getUserByCPF(ctx, db, cpf)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return api.Ok(api.CheckCPFResponse{Valid: true, Exists: false})
		}
		return api.Fail(err.Error())
	}
	return api.Ok(api.CheckCPFResponse{Valid: true, Exists: u.Active})
}

// RecordLogin stamps the last login instant for the account. It runs on the
// worker pool after the login response has been written; failures are
// dropped.
func RecordLogin(c cache.Cache, userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c.Set(ctx, "last_login:"+userID, time.Now().UTC().Format(time.RFC3339), 0)
}
