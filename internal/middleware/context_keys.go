package middleware

import "github.com/gin-gonic/gin"

// portalUserKey is the key used to store the authenticated portal user's
// email in the request context.
const portalUserKey = contextKey("portalUser")

// GetPortalUserFromContext retrieves the authenticated portal user email from
// the Gin context. It returns the email and a boolean indicating if it was found.
func GetPortalUserFromContext(c *gin.Context) (string, bool) {
	if val := c.Request.Context().Value(portalUserKey); val != nil {
		if email, ok := val.(string); ok {
			return email, true
		}
	}
	return "", false
}
