package controllers

import (
	"errors"
	"net/http"

	"github.com/CJR1981/Macro-Tracker/services"

	"github.com/gin-gonic/gin"
)

// respondError maps the service failure taxonomy onto HTTP statuses.
// Validation problems are 400s, a missing user or profile is a 404, an
// upstream estimate failure is a 502, anything else a 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrEmptyName),
		errors.Is(err, services.ErrUnknownMeal),
		errors.Is(err, services.ErrEmptyFoodName),
		errors.Is(err, services.ErrEmptyQuery),
		errors.Is(err, services.ErrIndexOutOfRange),
		errors.Is(err, services.ErrMissingAPIKey),
		errors.Is(err, services.ErrBadTheme):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrUnknownUser),
		errors.Is(err, services.ErrProfileNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrEstimateFailed):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
