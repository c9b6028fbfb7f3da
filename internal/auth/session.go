package auth

import (
	"askstack/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys. Username and email are cached display fields, refreshed on
// every authenticated request; only user_id is used as the auth boundary.
const (
	sessionUserID   = "user_id"
	sessionUsername = "username"
	sessionEmail    = "email"
	sessionToken    = "access_token"
)

// SaveSession binds the session to the user and caches display fields.
func SaveSession(c *gin.Context, user *models.User, token string) error {
	session := sessions.Default(c)
	session.Set(sessionUserID, user.ID)
	session.Set(sessionUsername, user.Username)
	session.Set(sessionEmail, user.Email)
	if token != "" {
		session.Set(sessionToken, token)
	}
	return session.Save()
}

// RefreshSession re-caches the display fields without touching the rest.
func RefreshSession(c *gin.Context, user *models.User) error {
	session := sessions.Default(c)
	session.Set(sessionUsername, user.Username)
	session.Set(sessionEmail, user.Email)
	return session.Save()
}

// SessionUserID returns the authenticated user id, or false for anonymous.
func SessionUserID(c *gin.Context) (uint, bool) {
	session := sessions.Default(c)
	switch v := session.Get(sessionUserID).(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	case int64:
		return uint(v), true
	default:
		return 0, false
	}
}

// ClearSession logs the user out. Safe to call on an empty session.
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}
