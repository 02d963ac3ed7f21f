package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	service "github.com/kavyansh10/GraminSetu/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// Context keys set by the officer-context middleware.
const (
	CtxOfficerID = "officer_id"
	CtxBranch    = "branch"
	CtxRole      = "role"
)

// RequireOfficer decodes the bearer token and puts the officer uid on the
// request context. Token issuance itself happens outside this service; the
// middleware only verifies the HS256 signature and reads the subject claim.
func RequireOfficer() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server auth is not configured"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}
		uid, _ := claims["sub"].(string)
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has no subject"})
			c.Abort()
			return
		}

		c.Set(CtxOfficerID, uid)
		c.Next()
	}
}

// RequireBranch resolves the officer's profile and stamps branch and role
// on the context. An officer without a profile, or a profile without a
// branch, is a precondition failure: nothing downstream (CRUD, automation)
// may run.
func RequireBranch(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString(CtxOfficerID)
		profile, err := users.Get(uid)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusPreconditionFailed, gin.H{"error": "Officer profile not set up"})
			c.Abort()
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load officer profile"})
			c.Abort()
			return
		}
		if profile.Branch == "" {
			c.JSON(http.StatusPreconditionFailed, gin.H{"error": "Officer profile has no branch"})
			c.Abort()
			return
		}

		c.Set(CtxBranch, profile.Branch)
		c.Set(CtxRole, string(profile.Role))
		c.Next()
	}
}
