package server

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	"sentimock/internal/correlation"
)

const contextKeyBearerToken = "bearerToken"

// correlationMiddleware assigns each request a correlation ID, threads it
// through the request context for slog, and echoes it back in a header.
func (s *Server) correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get("X-Correlation-ID")
		if id == "" {
			id = correlation.NewID()
		}

		ctx := correlation.WithID(c.Request().Context(), id)
		c.SetRequest(c.Request().WithContext(ctx))
		c.Response().Header().Set("X-Correlation-ID", id)

		return next(c)
	}
}

// bearerTokenMiddleware extracts an Authorization bearer token into the echo
// context. The token is deliberately not verified: the backend this mock
// stands in for answers identity queries from its fixture account, and the
// mock must not be stricter than the real thing.
func (s *Server) bearerTokenMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
			c.Set(contextKeyBearerToken, token)
			slog.DebugContext(c.Request().Context(), "Bearer token presented")
		}
		return next(c)
	}
}
