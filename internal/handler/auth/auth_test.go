// File: internal/handler/auth/auth_test.go
package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"project-board/internal/api"
	"project-board/internal/cache"
	"project-board/internal/database"
	"project-board/internal/service"
	"project-board/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

// syncPool runs each job inline so the test can observe its side effects.
type syncPool struct{ submitted int }

func (p *syncPool) Submit(j worker.Job) {
	p.submitted++
	j()
}
func (p *syncPool) Stop() {}

func newJSONCtx(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	login = service.Login
	changeFirstAccessPassword = service.ChangeFirstAccessPassword
	checkCPF = service.CheckCPF
	recordLogin = service.RecordLogin
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, http.MethodPost, "/auth/login", "{")
		require.NoError(t, LoginHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid request body")
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: echo.NewHTTPError(http.StatusBadRequest, "v")}
		ctx, rec := newJSONCtx(e, http.MethodPost, "/auth/login", `{"cpf":"52998224725"}`)
		require.NoError(t, LoginHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		login = func(context.Context, database.DB, api.LoginRequest) *api.Result {
			return api.Fail(service.InvalidCredentials)
		}
		stamped := false
		recordLogin = func(cache.Cache, string) { stamped = true }
		wp := &syncPool{}
		ctx, rec := newJSONCtx(e, http.MethodPost, "/auth/login", `{"cpf":"52998224725","password":"x"}`)
		require.NoError(t, LoginHandler(nil, nil, wp)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), service.InvalidCredentials)
		require.Zero(t, wp.submitted)
		require.False(t, stamped)
	})

	t.Run("ok stamps the login", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		login = func(context.Context, database.DB, api.LoginRequest) *api.Result {
			return api.Ok(api.LoginResponse{ID: "user-1", Name: "Alice", FirstAccess: true})
		}
		var stampedID string
		recordLogin = func(_ cache.Cache, userID string) { stampedID = userID }
		wp := &syncPool{}
		ctx, rec := newJSONCtx(e, http.MethodPost, "/auth/login", `{"cpf":"52998224725","password":"25111998"}`)
		require.NoError(t, LoginHandler(nil, &cache.FakeCache{}, wp)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 1, wp.submitted)
		require.Equal(t, "user-1", stampedID)
		require.Contains(t, rec.Body.String(), `"first_access":true`)
		require.Contains(t, rec.Body.String(), `"token":""`)
	})
}

func TestChangePasswordHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, http.MethodPost, "/auth/change-password-first-access", "{")
		require.NoError(t, ChangePasswordHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid request body")
	})

	t.Run("rotation rejected", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		changeFirstAccessPassword = func(context.Context, database.DB, cache.Cache, api.ChangePasswordRequest) *api.Result {
			return api.Fail("new password must differ from the default password")
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, "/auth/change-password-first-access",
			`{"cpf":"52998224725","current_password":"x","new_password":"25111998"}`)
		require.NoError(t, ChangePasswordHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "default password")
	})

	t.Run("ok threads the cache through", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		rdb := &cache.FakeCache{}
		changeFirstAccessPassword = func(_ context.Context, _ database.DB, c cache.Cache, _ api.ChangePasswordRequest) *api.Result {
			require.Same(t, cache.Cache(rdb), c)
			return api.NoContent()
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, "/auth/change-password-first-access",
			`{"cpf":"52998224725","current_password":"25111998","new_password":"NewSecret456!"}`)
		require.NoError(t, ChangePasswordHandler(nil, rdb)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"success":true`)
	})
}

func TestCheckCPFHandler(t *testing.T) {
	e := echo.New()

	t.Run("missing cpf", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodGet, "/auth/check-cpf", "")
		require.NoError(t, CheckCPFHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "cpf is required")
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		checkCPF = func(_ context.Context, _ database.DB, raw string) *api.Result {
			require.Equal(t, "529.982.247-25", raw)
			return api.Ok(api.CheckCPFResponse{Valid: true, Exists: false})
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "/auth/check-cpf?cpf=529.982.247-25", "")
		require.NoError(t, CheckCPFHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"valid":true`)
	})
}
