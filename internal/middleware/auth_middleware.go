package middleware

import (
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	autherrors "github.com/sudono1/gamesucks-api/internal/auth/errors"
	"github.com/sudono1/gamesucks-api/internal/pkg/response"
)

// AuthMiddleware memverifikasi bearer token dan menaruh identitas
// {user_id, role} di context. Role dibaca sekali dari claims token,
// tidak ada lookup tambahan per request.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get token
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			response.AbortError(c, autherrors.ErrUnauthorized)
			return
		}

		// 2. Parse & Validate
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.AbortError(c, errObj)
			return
		}

		// 3. Extract Claims
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.AbortError(c, autherrors.ErrInvalidToken)
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.AbortError(c, autherrors.ErrInvalidToken)
			return
		}

		role, _ := claims["role"].(string)

		// 4. Set validated values
		c.Set("user_id", userID)
		c.Set("role", role)

		c.Next()
	}
}

// RoleMiddleware menolak caller yang role-nya tidak ada di allowedRoles.
// Dipasang setelah AuthMiddleware.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			response.AbortError(c, autherrors.ErrForbidden)
			return
		}

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.AbortError(c, autherrors.ErrForbidden)
	}
}
