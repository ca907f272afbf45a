package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

func TestHealth(t *testing.T) {
	_, c, rec := setupEcho()

	err := Health(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestOK(t *testing.T) {
	_, c, rec := setupEcho()

	data := []string{"tokyo", "osaka", "fukuoka"}
	meta := &Meta{CityID: "tokyo", TripLengthDays: 5, Count: 3, CacheHit: true}

	err := OK(c, data, meta)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Data  []string `json:"data"`
		Error *string  `json:"error"`
		Meta  *Meta    `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Data, 3)
	assert.Nil(t, result.Error)
	require.NotNil(t, result.Meta)
	assert.Equal(t, "tokyo", result.Meta.CityID)
	assert.Equal(t, 5, result.Meta.TripLengthDays)
	assert.Equal(t, 3, result.Meta.Count)
	assert.True(t, result.Meta.CacheHit)
}

func TestOK_NilMetaOmitted(t *testing.T) {
	_, c, rec := setupEcho()

	err := OK(c, map[string]string{"status": "fine"}, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Contains(t, raw, "data")
	assert.Contains(t, raw, "error")
	assert.NotContains(t, raw, "meta")
}

func TestFail_NullData(t *testing.T) {
	_, c, rec := setupEcho()

	err := Fail(c, http.StatusNotFound, "unknown city")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var result struct {
		Data  json.RawMessage `json:"data"`
		Error *string         `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "null", string(result.Data))
	require.NotNil(t, result.Error)
	assert.Equal(t, "unknown city", *result.Error)
}

func TestBadRequest(t *testing.T) {
	_, c, rec := setupEcho()

	err := BadRequest(c, MsgInvalidTripLength)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotNil(t, result.Error)
	assert.Equal(t, MsgInvalidTripLength, *result.Error)
}

func TestNotFound(t *testing.T) {
	_, c, rec := setupEcho()

	err := NotFound(c, MsgUnknownCity)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var result Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotNil(t, result.Error)
	assert.Equal(t, MsgUnknownCity, *result.Error)
}

func TestServiceUnavailable(t *testing.T) {
	_, c, rec := setupEcho()

	err := ServiceUnavailable(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var result Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotNil(t, result.Error)
	assert.Equal(t, MsgStoreUnavailable, *result.Error)
}

func TestInternalServerError(t *testing.T) {
	_, c, rec := setupEcho()

	err := InternalServerError(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var result Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotNil(t, result.Error)
	assert.Equal(t, MsgInternalError, *result.Error)
}

func TestCacheControl(t *testing.T) {
	tests := []struct {
		name   string
		maxAge time.Duration
		want   string
	}{
		{"one hour", time.Hour, "public, max-age=3600"},
		{"one day", 24 * time.Hour, "public, max-age=86400"},
		{"thirty seconds", 30 * time.Second, "public, max-age=30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, rec := setupEcho()

			CacheControl(c, tt.maxAge)
			require.NoError(t, OK(c, nil, nil))

			assert.Equal(t, tt.want, rec.Header().Get("Cache-Control"))
		})
	}
}
