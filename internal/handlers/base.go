package handlers

import (
	"askstack/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Render injects common view data (current user, request path) before
// handing off to the template.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}
	if user := middleware.CurrentUser(c); user != nil {
		obj["CurrentUser"] = user
	}
	obj["CurrentPath"] = c.Request.URL.Path
	c.HTML(code, name, obj)
}

// RenderError shows the generic error page. Message must be user-safe,
// internals belong in the logs.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Title": "Error", "Error": message})
}
