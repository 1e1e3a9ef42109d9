package middleware

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"supportal/internal/shared/utils"
)

const adminPasswordHeader = "X-Admin-Password"

// AdminAuth guards the admin endpoints with the shared admin password. The
// password is taken from the X-Admin-Password header, the adminPassword
// query parameter, or the adminPassword field of a JSON body, in that
// order. Comparison is constant-time.
//
// An empty configured password disables admin access entirely rather than
// letting everyone in.
func AdminAuth(configured string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if configured == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "admin access is not configured")
			c.Abort()
			return
		}

		supplied := extractAdminPassword(c)
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(configured)) != 1 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid admin password")
			c.Abort()
			return
		}

		c.Next()
	}
}

func extractAdminPassword(c *gin.Context) string {
	if v := c.GetHeader(adminPasswordHeader); v != "" {
		return v
	}
	if v := c.Query("adminPassword"); v != "" {
		return v
	}
	return adminPasswordFromBody(c)
}

// adminPasswordFromBody peeks at a JSON body for the adminPassword field and
// restores the body so the handler can bind it again.
func adminPasswordFromBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}

	raw, err := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var body struct {
		AdminPassword string `json:"adminPassword"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}

	return body.AdminPassword
}
