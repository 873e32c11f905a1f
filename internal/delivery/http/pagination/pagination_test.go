package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "catalog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/products?"+rawQuery, nil)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec)
}

func TestFromQuery_Defaults(t *testing.T) {
	pagination, err := FromQuery(newQueryContext(t, ""))
	require.NoError(t, err)
	assert.Nil(t, pagination.Limit)
	assert.Zero(t, pagination.Offset)
}

func TestFromQuery_BothParams(t *testing.T) {
	pagination, err := FromQuery(newQueryContext(t, "limit=25&offset=50"))
	require.NoError(t, err)
	require.NotNil(t, pagination.Limit)
	assert.Equal(t, 25, *pagination.Limit)
	assert.Equal(t, 50, pagination.Offset)
}

func TestFromQuery_OffsetOnly(t *testing.T) {
	pagination, err := FromQuery(newQueryContext(t, "offset=10"))
	require.NoError(t, err)
	assert.Nil(t, pagination.Limit)
	assert.Equal(t, 10, pagination.Offset)
}

func TestFromQuery_InvalidValues(t *testing.T) {
	tests := []struct {
		name      string
		rawQuery  string
		wantField string
	}{
		{name: "non-numeric limit", rawQuery: "limit=abc", wantField: "limit"},
		{name: "fractional limit", rawQuery: "limit=2.5", wantField: "limit"},
		{name: "zero limit", rawQuery: "limit=0", wantField: "limit"},
		{name: "negative limit", rawQuery: "limit=-3", wantField: "limit"},
		{name: "non-numeric offset", rawQuery: "offset=ten", wantField: "offset"},
		{name: "negative offset", rawQuery: "offset=-1", wantField: "offset"},
		{name: "valid limit invalid offset", rawQuery: "limit=5&offset=x", wantField: "offset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromQuery(newQueryContext(t, tt.rawQuery))
			require.Error(t, err)

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field())
			assert.Equal(t, http.StatusBadRequest, validationErr.HTTPCode())
		})
	}
}
