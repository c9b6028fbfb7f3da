package middleware

import (
	"net/http"

	"askstack/internal/auth"
	"askstack/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserKey is the context key the loaded *models.User lives under.
const UserKey = "current_user"

// LoadUser resolves the session user id to a User and sets it on the
// context. It also refreshes the cached display fields (username, email)
// into the session on every authenticated request.
func LoadUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := auth.SessionUserID(c); ok {
			var user models.User
			if err := db.First(&user, userID).Error; err == nil {
				c.Set(UserKey, &user)
				auth.RefreshSession(c, &user)
			}
		}
		c.Next()
	}
}

// AuthRequired guards protected routes. Anonymous requests are redirected to
// the login page, never answered with a bare 401. A session pointing at a
// user that no longer resolves is cleared and treated the same.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auth.SessionUserID(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if _, exists := c.Get(UserKey); !exists {
			auth.ClearSession(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the loaded user for the request, or nil for anonymous.
func CurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(UserKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
