// File: internal/middleware/middleware.go
package middleware

import (
	"net/http"
	"runtime/debug"

	"project-board/internal/api"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the outermost fault boundary: echo HTTP errors keep their
// status and message, anything else surfaces as a generic 500 problem body.
// Stack detail is logged only in debug mode.
func ErrorHandler(debugMode bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if he, ok := err.(*echo.HTTPError); ok {
			msg, ok := he.Message.(string)
			if !ok {
				msg = http.StatusText(he.Code)
			}
			_ = c.JSON(he.Code, api.Fail(msg))
			return
		}
		if debugMode {
			c.Logger().Errorf("unhandled error: %v\n%s", err, debug.Stack())
		} else {
			c.Logger().Error(err)
		}
		_ = c.JSON(http.StatusInternalServerError, api.Fail("internal server error"))
	}
}
