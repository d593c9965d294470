package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seoatlas/seoatlas/internal/models"
)

// abortWithError translates repository error kinds into the HTTP contract:
// invalid id / invalid input -> 400, not found -> 404, everything else -> 500.
// The payload mirrors the {"detail": ...} shape the frontend already speaks.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrInvalidID), errors.Is(err, models.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	}
	c.AbortWithStatusJSON(status, gin.H{"detail": err.Error()})
}

func abortBadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Invalid input: " + err.Error()})
}
