package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/blogts/blogapi/config"
	"github.com/blogts/blogapi/utils"
)

const (
	// ContextEmailKey stores the authenticated email inside Gin context.
	ContextEmailKey = "email"
	// ContextRolesKey stores the authenticated role names inside Gin context.
	ContextRolesKey = "roles"
)

// AuthRequired ensures the request carries a valid bearer token. Claims are
// stored in the context for downstream handlers. Verification fails closed:
// any parse error means unauthenticated.
func AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(ctx, http.StatusUnauthorized, 40101, "authorization header missing")
			ctx.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.Error(ctx, http.StatusUnauthorized, 40102, "invalid authorization header format")
			ctx.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			utils.Error(ctx, http.StatusUnauthorized, 40103, "empty bearer token")
			ctx.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString, config.Get().JWTSecret)
		if err != nil {
			utils.Error(ctx, http.StatusUnauthorized, 40104, "invalid token")
			ctx.Abort()
			return
		}

		ctx.Set(ContextEmailKey, claims.Email)
		ctx.Set(ContextRolesKey, claims.Roles)
		ctx.Next()
	}
}

// RequireRole gates the request on a role claim. It must run after
// AuthRequired.
func RequireRole(name string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		roles, ok := ctx.Get(ContextRolesKey)
		if !ok {
			utils.Error(ctx, http.StatusForbidden, 40301, "insufficient role")
			ctx.Abort()
			return
		}
		for _, role := range roles.([]string) {
			if role == name {
				ctx.Next()
				return
			}
		}
		utils.Error(ctx, http.StatusForbidden, 40301, "insufficient role")
		ctx.Abort()
	}
}
