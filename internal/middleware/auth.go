package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"craftfolio/internal/auth"
	"craftfolio/internal/models"
	"craftfolio/internal/repositories"
)

const currentUserKey = "currentUser"

// LoginPath is where unauthenticated admin requests are sent.
const LoginPath = "/admin/login"

// CurrentUser resolves the session cookie to a User before the handler
// executes. Any failure (no cookie, bad token, user gone) leaves the
// request anonymous.
func CurrentUser(db *gorm.DB, users repositories.UserRepository, sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(auth.CookieName)
		if err != nil || tokenStr == "" {
			c.Next()
			return
		}

		userID, err := sessions.Parse(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.FindByID(db, userID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireAuth gates admin-area operations: anonymous requests are
// redirected to the login view.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetCurrentUser(c) == nil {
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetCurrentUser returns the resolved user, or nil for anonymous
// requests.
func GetCurrentUser(c *gin.Context) *models.User {
	userVal, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}

	user, ok := userVal.(*models.User)
	if !ok {
		return nil
	}

	return user
}
