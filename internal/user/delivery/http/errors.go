package http

import (
	"net/http"

	"directory-api/internal/authz"
	"directory-api/internal/user"
	pkgErrors "directory-api/pkg/errors"
	"directory-api/pkg/response"

	"github.com/gin-gonic/gin"
)

var errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, response.ValidationErrorMsg, http.StatusBadRequest)

var errMap = response.ErrorMapping{
	user.ErrUserNotFound:          pkgErrors.NewNotFoundHTTPError("User not found"),
	user.ErrUserExists:            pkgErrors.NewHTTPError(http.StatusConflict, "User already exists", http.StatusConflict),
	user.ErrFieldRequired:         pkgErrors.NewHTTPError(http.StatusBadRequest, "Auth0Id and Email are required", http.StatusBadRequest),
	authz.ErrOrganisationNotFound: pkgErrors.NewNotFoundHTTPError("Organisation not found"),
}

// respondErr sends guard denials with their reason, everything else through errMap.
func (h *Handler) respondErr(c *gin.Context, err error) {
	if reason, ok := authz.IsDenied(err); ok {
		response.Forbidden(c, reason)
		return
	}
	response.ErrorWithMap(c, err, errMap, h.discord)
}
