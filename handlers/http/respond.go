package httpHandler

import (
	"errors"
	"net/http"

	"bms-server/usecases"

	"github.com/gin-gonic/gin"
)

// fail maps a usecase error to its HTTP status. Unknown errors are internal.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecases.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, usecases.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, usecases.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, usecases.ErrConflict):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
