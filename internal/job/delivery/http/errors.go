package http

import (
	"net/http"

	"directory-api/internal/job"
	pkgErrors "directory-api/pkg/errors"
	"directory-api/pkg/response"
)

var errMap = response.ErrorMapping{
	job.ErrUnknownJob: pkgErrors.NewNotFoundHTTPError("Job not found"),
	job.ErrJobRunning: pkgErrors.NewHTTPError(http.StatusConflict, "Job is already running", http.StatusConflict),
}
