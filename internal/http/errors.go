package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/logging"
	"github.com/mrlokans/catalog/internal/schema"
	"github.com/mrlokans/catalog/internal/services"
)

// ErrorResponse is the error envelope returned by every API endpoint.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

const genericErrorMessage = "Something went wrong"

// errorResponse maps an error onto the envelope. Unclassified errors keep
// their message only in development.
func errorResponse(err error, development bool) ErrorResponse {
	var (
		shapeErr      *schema.ValidationError
		domainErr     *services.ValidationError
		notFoundErr   *services.NotFoundError
		constraintErr *database.ConstraintError
	)

	switch {
	case errors.As(err, &shapeErr):
		return ErrorResponse{http.StatusBadRequest, "Validation Error", shapeErr.Error()}
	case errors.As(err, &domainErr):
		return ErrorResponse{http.StatusBadRequest, "Validation Error", domainErr.Error()}
	case errors.As(err, &notFoundErr):
		return ErrorResponse{http.StatusNotFound, "Not Found", notFoundErr.Error()}
	case errors.As(err, &constraintErr):
		return ErrorResponse{http.StatusBadRequest, "Database Error", "Invalid request to database"}
	}

	message := genericErrorMessage
	if development {
		message = err.Error()
	}
	return ErrorResponse{http.StatusInternalServerError, "Internal Server Error", message}
}

// ErrorHandler renders the last error a handler attached with c.Error.
// Handlers that already wrote a response are left alone.
func ErrorHandler(development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		resp := errorResponse(err, development)
		if resp.StatusCode >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("request_id", c.GetString(logging.RequestIDKey)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("Unhandled error")
		}
		c.JSON(resp.StatusCode, resp)
	}
}

// Recovery turns a panic into the 500 envelope.
func Recovery(development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(logging.RequestIDKey)).
					Interface("error", r).
					Msg("Panic recovered")

				message := genericErrorMessage
				if development {
					message = fmt.Sprint(r)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					StatusCode: http.StatusInternalServerError,
					Error:      "Internal Server Error",
					Message:    message,
				})
			}
		}()

		c.Next()
	}
}

// NoRoute answers requests that match no registered route.
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		StatusCode: http.StatusNotFound,
		Error:      "Not Found",
		Message:    fmt.Sprintf("Route %s:%s not found", c.Request.Method, c.Request.URL.RequestURI()),
	})
}
