package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-content-service/internal/custom_errors"
)

type ErrorBody struct {
	Error string `json:"error"`
}

// Error maps the service sentinel errors onto HTTP status codes and
// writes a json error body.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, custom_errors.ErrPageNotFound),
		errors.Is(err, custom_errors.ErrSectionNotFound),
		errors.Is(err, custom_errors.ErrTemplateNotFound):
		status = http.StatusNotFound
	case errors.Is(err, custom_errors.ErrTemplateRequired),
		errors.Is(err, custom_errors.ErrValidationFailed):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, custom_errors.ErrPageSlugExists),
		errors.Is(err, custom_errors.ErrSectionPositionConflict):
		status = http.StatusConflict
	}
	c.AbortWithStatusJSON(status, ErrorBody{Error: err.Error()})
}

func BadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{Error: err.Error()})
}
