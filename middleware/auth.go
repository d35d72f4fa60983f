package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Its-aman09/ecommerce/auth"
)

const (
	identityKey      = "identity"
	sessionKeyCookie = "session_key"
)

// ResolveIdentity establishes who the visitor is, once per request: the
// user id from a valid Bearer token, otherwise an anonymous session key
// from a cookie (created here when absent). The resolved identity is set
// on the context for handlers to read with IdentityFromCtx.
func ResolveIdentity(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header != "" {
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if userID, err := auth.ParseUserToken(tokenString); err == nil {
			c.Set(identityKey, auth.UserIdentity(userID))
			c.Next()
			return
		}
	}

	key, err := c.Cookie(sessionKeyCookie)
	if err != nil || key == "" {
		key = uuid.NewString()
		c.SetCookie(sessionKeyCookie, key, 86400*30, "/", "", false, true)
	}
	c.Set(identityKey, auth.SessionIdentity(key))
	c.Next()
}

// RequireUser rejects requests whose identity is not an authenticated
// user. It must run after ResolveIdentity.
func RequireUser(c *gin.Context) {
	id, ok := IdentityFromCtx(c)
	if !ok || !id.Authenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		c.Abort()
		return
	}
	c.Next()
}

// IdentityFromCtx returns the identity placed by ResolveIdentity.
func IdentityFromCtx(c *gin.Context) (auth.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}
