package server

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	"sentimock/internal/dispatch"
	"sentimock/internal/domain"
)

// graphqlRequest is the standard GraphQL-over-HTTP request body.
type graphqlRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// namedOperationPattern extracts the name of the first named operation from a
// GraphQL document, for clients that omit operationName in the body.
var namedOperationPattern = regexp.MustCompile(`(?:query|mutation)\s+([A-Za-z_][A-Za-z0-9_]*)`)

// handleGraphQL decodes the request, resolves the operation, and hands off to
// the dispatcher. Operation-level failures ride on HTTP 200 with an errors
// list, per GraphQL convention; only transport problems get non-200 codes.
func (s *Server) handleGraphQL(c echo.Context) error {
	var req graphqlRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid GraphQL request body")
	}

	name := req.OperationName
	if name == "" {
		if m := namedOperationPattern.FindStringSubmatch(req.Query); m != nil {
			name = m[1]
		}
	}
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "request carries no named operation")
	}

	operation, ok := dispatch.Canonical(name)
	if !ok {
		// Keep unknown names on the GraphQL error channel so the SPA's
		// error handling sees a familiar shape.
		resp := &domain.GraphQLResponse{Errors: []domain.GraphQLError{{
			Message: fmt.Sprintf("Unknown operation %q", name),
			Path:    []string{name},
		}}}
		return writeResponse(c, resp)
	}

	resp := s.dispatcher.Dispatch(c.Request().Context(), operation, req.Variables)
	return writeResponse(c, resp)
}

func writeResponse(c echo.Context, resp *domain.GraphQLResponse) error {
	if err := c.JSON(http.StatusOK, resp); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
