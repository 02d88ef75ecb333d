package response

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"

	"directory-api/pkg/discord"
	"directory-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Data:    data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(parseError(errors.NewUnauthorizedHTTPError(), c, nil))
}

// Forbidden sends 403 response with the denial reason.
func Forbidden(c *gin.Context, reason string) {
	c.JSON(parseError(errors.NewForbiddenHTTPError(reason), c, nil))
}

// NotFound sends 404 response.
func NotFound(c *gin.Context, message string) {
	c.JSON(parseError(errors.NewNotFoundHTTPError(message), c, nil))
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	var (
		validationErr *errors.ValidationError
		collectorErr  *errors.ValidationErrorCollector
		httpErr       *errors.HTTPError
	)
	switch {
	case stderrors.As(err, &validationErr):
		return http.StatusBadRequest, Resp{
			Error:  strings.Join(validationErr.Messages, ", "),
			Errors: []*errors.ValidationError{validationErr},
		}
	case stderrors.As(err, &collectorErr):
		return http.StatusBadRequest, Resp{
			Error:  ValidationErrorMsg,
			Errors: collectorErr.Errors(),
		}
	case stderrors.As(err, &httpErr):
		statusCode := httpErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			Error: httpErr.Message,
		}
	default:
		if d != nil && err != nil {
			sendDiscordMessageAsync(c, d, buildInternalServerErrorDataForReportBug(c, err.Error(), captureStackTrace()))
		}
		return http.StatusInternalServerError, Resp{
			Error: DefaultErrorMessage,
		}
	}
}

// Error sends error response (status + JSON from parseError).
func Error(c *gin.Context, err error, d discord.IDiscord) {
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

// HttpError sends response for *errors.HTTPError.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	statusCode, resp := parseError(err, c, nil)
	c.JSON(statusCode, resp)
}

// ErrorWithMap looks up err in eMap and sends corresponding HTTPError, else Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range eMap {
		if stderrors.Is(err, target) {
			HttpError(c, httpErr)
			return
		}
	}
	Error(c, err, d)
}

// PanicError handles panic recovery and sends error response.
func PanicError(c *gin.Context, err any, d discord.IDiscord) {
	if errVal, ok := err.(error); ok {
		Error(c, errVal, d)
		return
	}
	Error(c, fmt.Errorf("%v", err), d)
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}
	var stackTrace []string
	for _, pc := range pcs[:n] {
		f := runtime.FuncForPC(pc)
		if f != nil {
			file, line := f.FileLine(pc)
			stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", file, line, f.Name()))
		}
	}
	return stackTrace
}
