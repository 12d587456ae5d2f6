package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expenseinsight/expense-api/services"
)

// respondError maps a service error onto the wire taxonomy: validation
// failures surface their message with 400, missing/foreign records use the
// resource-specific notFoundMsg with 404, and everything else is logged and
// hidden behind a generic 500.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	default:
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
