package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// EstablishmentResolver maps an authenticated user to their tenant.
type EstablishmentResolver interface {
	EstablishmentForUser(ctx context.Context, userID string) (string, error)
}

// RequireEstablishment resolves the caller's establishment from their
// profile and attaches it to the context. Every tenant-scoped route sits
// behind this: a user without an establishment never reaches a handler,
// so no query can run unscoped.
func RequireEstablishment(resolver EstablishmentResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		establishmentID, err := resolver.EstablishmentForUser(c.Request.Context(), userID)
		if err != nil || establishmentID == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "no establishment linked to user"})
			return
		}

		c.Set("establishmentID", establishmentID)
		c.Next()
	}
}
