package middleware

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// statusByCode is the one place error codes become HTTP statuses
var statusByCode = map[string]int{
	models.ErrInvalidEntries: http.StatusBadRequest,
	models.ErrInvalidFields:  http.StatusUnauthorized,
	models.ErrEmailExists:    http.StatusConflict,
	models.ErrIncorrectLogin: http.StatusUnauthorized,
	models.ErrMissingToken:   http.StatusUnauthorized,
	models.ErrMalformedToken: http.StatusUnauthorized,
	models.ErrRecipeNotFound: http.StatusNotFound,
	models.ErrUnauthorized:   http.StatusUnauthorized,
	models.ErrNotAdmin:       http.StatusForbidden,
	models.ErrInvalidImage:   http.StatusUnsupportedMediaType,
	models.ErrImageNotFound:  http.StatusNotFound,
}

// StatusFor returns the HTTP status of an error code
func StatusFor(code string) (int, bool) {
	status, ok := statusByCode[code]
	return status, ok
}

// ErrorHandler turns the last error a handler attached with c.Error into a
// {"message": ...} response. Known codes get their mapped status; anything
// else is a 500 whose message is the raw error unless hideInternal is set.
func ErrorHandler(logger *logrus.Logger, hideInternal bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var apiErr models.APIError
		if errors.As(err, &apiErr) {
			if status, ok := StatusFor(apiErr.Code); ok {
				c.JSON(status, gin.H{"message": apiErr.Message})
				return
			}
		}

		logger.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("Unhandled request error")

		message := err.Error()
		if hideInternal {
			message = "internal server error"
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": message})
	}
}
