package handlers

import (
	"errors"
	"net/http"

	"press_manager/internal/services"
	"press_manager/pkg/device"

	"github.com/gin-gonic/gin"
)

var validationErrors = []error{
	services.ErrNameRequired,
	services.ErrPhoneRequired,
	services.ErrLocationRequired,
	services.ErrInvalidPhone,
	services.ErrNoLineItems,
	services.ErrInvalidTotal,
	services.ErrServiceNameRequired,
	services.ErrInvalidPrice,
	services.ErrUnknownPricingMode,
	services.ErrCostNameRequired,
	services.ErrCostPriceRequired,
	services.ErrInvalidCostPrice,
	services.ErrDisplayNameRequired,
	services.ErrUnknownArchive,
	device.ErrMalformedToken,
}

// respondError maps service sentinels onto HTTP statuses: validation
// failures are 400, missing records 404, rejected transitions 409,
// everything else a 500.
func respondError(c *gin.Context, err error) {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	switch {
	case errors.Is(err, services.ErrOrderNotFound), errors.Is(err, services.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrOrderFinalized):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
	}
}
