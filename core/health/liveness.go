package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Liveness indicates if the service process is running.
// Always returns {"status":"ok"} with 200 OK. No dependency checks.
func Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": StatusOK})
}

// NoContent returns HTTP 204 without body. Ideal for high-frequency checks.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
