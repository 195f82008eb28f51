package api

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// AdminTokenVar names the environment variable holding the approval
// token. Approval endpoints are disabled when it is unset.
const AdminTokenVar = "WARDEN_ADMIN_TOKEN"

// adminTokenHeader is the request header carrying the token.
const adminTokenHeader = "X-Admin-Token"

// requireAdmin enforces the admin token on state-changing endpoints.
// Returns false after writing the error response.
func requireAdmin(c *gin.Context) bool {
	expected := os.Getenv(AdminTokenVar)
	if expected == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "approval disabled: no admin token configured"})
		return false
	}
	got := c.GetHeader(adminTokenHeader)
	if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid admin token"})
		return false
	}
	return true
}

// extractAuthor extracts the acting user from proxy headers.
// Priority: X-Forwarded-User > X-Forwarded-Email > X-Remote-User >
// "api-client".
func extractAuthor(c *gin.Context) string {
	if user := c.GetHeader("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.GetHeader("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.GetHeader("X-Remote-User"); user != "" {
		return user
	}
	return "api-client"
}
