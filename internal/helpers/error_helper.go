package helpers

import (
	"errors"
	"net/http"

	"github.com/farellandr/promptbox/internal/repository"
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error:  customMessage,
		Status: HTTPStatusText(statusCode),
	})
}

// RespondWithStoreError maps a data-access error to its status code. Storage
// failures are answered with fallbackMessage so driver detail never reaches the
// client; the detail is attached to the request for the access log.
func RespondWithStoreError(c *gin.Context, err error, fallbackMessage string) {
	var invalid *repository.ValidationError
	var notFound *repository.NotFoundError
	switch {
	case errors.As(err, &invalid):
		RespondWithError(c, http.StatusBadRequest, invalid.Error())
	case errors.As(err, &notFound):
		RespondWithError(c, http.StatusNotFound, capitalize(notFound.Entity)+" not found.")
	default:
		_ = c.Error(err)
		RespondWithError(c, http.StatusInternalServerError, fallbackMessage)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
