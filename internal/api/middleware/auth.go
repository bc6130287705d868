package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/arjun-and-preetham/studio-backend/internal/service"
	"github.com/arjun-and-preetham/studio-backend/internal/types"
	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// AuthMiddleware validates JWT tokens and sets the principal in context
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Printf("❌ [Auth] Missing Authorization header - Path: %s", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Printf("❌ [Auth] Invalid header format - Path: %s", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		token, err := authService.ValidateToken(parts[1])
		if err != nil || !token.Valid {
			log.Printf("❌ [Auth] Invalid token - Path: %s, Error: %v", c.Request.URL.Path, err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		principal, err := authService.PrincipalFromToken(token)
		if err != nil {
			log.Printf("❌ [Auth] Failed to extract principal - Path: %s, Error: %v", c.Request.URL.Path, err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireAdmin allows only staff principals carrying the admin claim.
// Must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal == nil || principal.Audience != types.AudienceStaff || !principal.IsAdmin {
			log.Printf("❌ [Auth] Admin access denied - Path: %s", c.Request.URL.Path)
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireClient allows only client principals bound to a client profile.
// Must run after AuthMiddleware.
func RequireClient() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal == nil || principal.Audience != types.AudienceClient || principal.ClientID == "" {
			log.Printf("❌ [Auth] Client access denied - Path: %s", c.Request.URL.Path)
			c.JSON(http.StatusForbidden, gin.H{"error": "Client access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestLogger logs all incoming requests with details
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		statusEmoji := "✅"
		if status >= 400 && status < 500 {
			statusEmoji = "⚠️"
		} else if status >= 500 {
			statusEmoji = "❌"
		}

		log.Printf("%s [%s] %s %d - %v", statusEmoji, method, path, status, duration)

		if len(c.Errors) > 0 {
			for _, e := range c.Errors {
				log.Printf("❌ [Error] %v", e.Err)
			}
		}
	}
}

// GetPrincipal extracts the principal from gin context, nil if unauthenticated
func GetPrincipal(c *gin.Context) *service.Principal {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	principal, ok := value.(*service.Principal)
	if !ok {
		return nil
	}
	return principal
}

// RequirePrincipal returns false and writes a 401 if no principal is set
func RequirePrincipal(c *gin.Context) (*service.Principal, bool) {
	principal := GetPrincipal(c)
	if principal == nil {
		log.Printf("❌ [Auth] Not authenticated - Path: %s", c.Request.URL.Path)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return nil, false
	}
	return principal, true
}
