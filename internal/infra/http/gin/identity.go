package ginserver

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	gin "github.com/gin-gonic/gin"
)

const principalContextKey = "pinelodge.principal"

// principal is the verified identity claim attached by the fronting
// gateway. The engine never issues or verifies credentials itself; it
// only trusts the claim headers and checks roles at admin boundaries.
type principal struct {
	Email string
	Role  string
}

func (p principal) IsAdmin() bool {
	return strings.EqualFold(p.Role, "admin")
}

// IdentityMiddleware lifts the gateway's verified-claim headers into a
// request principal. When a gateway secret is configured, claims are
// only honored if the shared-secret header matches.
type IdentityMiddleware struct {
	GatewaySecret string
	Logger        *slog.Logger
}

func (m IdentityMiddleware) Handle(c *gin.Context) {
	email := strings.TrimSpace(c.GetHeader("X-Verified-Email"))
	if email == "" {
		c.Next()
		return
	}
	if m.GatewaySecret != "" {
		token := c.GetHeader("X-Gateway-Token")
		if subtle.ConstantTimeCompare([]byte(token), []byte(m.GatewaySecret)) != 1 {
			if m.Logger != nil {
				m.Logger.Debug("identity headers rejected", "reason", "gateway token mismatch")
			}
			c.Next()
			return
		}
	}
	setPrincipal(c, principal{
		Email: strings.ToLower(email),
		Role:  strings.TrimSpace(c.GetHeader("X-Verified-Role")),
	})
	c.Next()
}

func setPrincipal(c *gin.Context, p principal) {
	c.Set(principalContextKey, p)
}

func currentPrincipal(c *gin.Context) (principal, bool) {
	val, exists := c.Get(principalContextKey)
	if !exists {
		return principal{}, false
	}
	p, ok := val.(principal)
	return p, ok
}

func requireUser(c *gin.Context) (principal, bool) {
	p, ok := currentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "auth required"})
		return principal{}, false
	}
	return p, true
}

func requireAdmin(c *gin.Context) (principal, bool) {
	p, ok := currentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "auth required"})
		return principal{}, false
	}
	if !p.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		return principal{}, false
	}
	return p, true
}
