package http

import (
	"net/http"

	"directory-api/internal/organisation"
	pkgErrors "directory-api/pkg/errors"
	"directory-api/pkg/response"
)

var (
	errFieldRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "Key, Name and AssociatedLocationIds are required", http.StatusBadRequest)
	errNoteRequired  = pkgErrors.NewHTTPError(http.StatusBadRequest, "StaffName and Reason are required", http.StatusBadRequest)
)

var errMap = response.ErrorMapping{
	organisation.ErrNotFound:      pkgErrors.NewNotFoundHTTPError("Organisation not found"),
	organisation.ErrKeyExists:     pkgErrors.NewHTTPError(http.StatusConflict, "Organisation key already exists", http.StatusConflict),
	organisation.ErrFieldRequired: errFieldRequired,
}
