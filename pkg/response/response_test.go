package response

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"directory-api/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorWithMapValidationCollector(t *testing.T) {
	errMissing := stderrors.New("required field missing")
	errGone := stderrors.New("gone")

	vc := errors.NewValidationErrorCollector().
		Add(errors.NewValidationError(http.StatusBadRequest, "Title", "is required")).
		Add(errors.NewValidationError(http.StatusBadRequest, "LocationKey", "is required"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	ErrorWithMap(c, fmt.Errorf("%w: %w", errMissing, vc), ErrorMapping{
		errGone: errors.NewNotFoundHTTPError("gone"),
	}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, ValidationErrorMsg, body.Error)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "Title", body.Errors[0].Field)
	assert.Equal(t, "LocationKey", body.Errors[1].Field)
}

func TestErrorWithMapMapped(t *testing.T) {
	errGone := stderrors.New("gone")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	ErrorWithMap(c, fmt.Errorf("lookup: %w", errGone), ErrorMapping{
		errGone: errors.NewNotFoundHTTPError("Resource not found"),
	}, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
