package middleware

import (
	"net/http"

	"github.com/Misenpai/prweb/internal/shared/apperror"
	"github.com/Misenpai/prweb/internal/shared/response"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

// Authorize checks the caller's role against the casbin policy for the given
// resource and action. Must run after Credential so the role is populated.
func Authorize(enforcer *casbin.Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")

		allowed, err := enforcer.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Authorization check failed", nil)
			c.Abort()
			return
		}
		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "You don't have permission to access this resource", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
