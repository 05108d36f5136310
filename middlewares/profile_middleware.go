// middlewares/profile_middleware.go
package middlewares

import (
	"net/http"

	"github.com/CJR1981/Macro-Tracker/services"

	"github.com/gin-gonic/gin"
)

// ProfileResolver checks the :name path segment against the user registry
// and stores the resolved username on the context. Handlers behind it can
// assume the user is registered; whether the profile blob actually exists is
// still their problem (an orphaned registry entry surfaces as a 404 from the
// profile store).
func ProfileResolver(registry *services.RegistryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		if name == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "username required"})
			return
		}
		ok, err := registry.Exists(name)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown user"})
			return
		}
		c.Set("user", name)
		c.Next()
	}
}
