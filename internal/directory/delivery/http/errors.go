package http

import (
	"net/http"

	"directory-api/internal/directory"
	pkgErrors "directory-api/pkg/errors"
	"directory-api/pkg/response"
)

var errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, response.ValidationErrorMsg, http.StatusBadRequest)

// Missing fields are not mapped: the usecase returns a validation collector
// that the response layer renders field by field.
var errMap = response.ErrorMapping{
	directory.ErrNotFound: pkgErrors.NewNotFoundHTTPError("Resource not found"),
}
