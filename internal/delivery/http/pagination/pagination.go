// Package pagination parses and validates the paging query parameters of
// listing endpoints.
package pagination

import (
	"strconv"

	domainerrors "catalog/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Pagination is a validated page window. A nil Limit means the listing runs
// to the end of the collection.
type Pagination struct {
	Limit  *int
	Offset int
}

// FromQuery reads "limit" and "offset" from the request query string. Both
// are optional; absent parameters fall back to an unbounded window starting
// at zero. Any present parameter must be a well-formed number: limit at
// least 1, offset at least 0. A malformed value fails with a
// ValidationError naming the parameter.
func FromQuery(c echo.Context) (*Pagination, error) {
	pagination := &Pagination{}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, domainerrors.NewValidationError("limit", "must be a number")
		}
		if limit < 1 {
			return nil, domainerrors.NewValidationError("limit", "must be at least 1")
		}

		pagination.Limit = &limit
	}

	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return nil, domainerrors.NewValidationError("offset", "must be a number")
		}
		if offset < 0 {
			return nil, domainerrors.NewValidationError("offset", "must not be negative")
		}

		pagination.Offset = offset
	}

	return pagination, nil
}
