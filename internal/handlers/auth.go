package handlers

import (
	"errors"
	"net/http"

	"askstack/internal/auth"
	"askstack/internal/forms"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Form and credential failures re-render their page with HTTP 200 so the
// user keeps their context; only genuinely broken requests get error codes.
type AuthHandler struct {
	auth *auth.Service
}

func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{auth: authService}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{
		"Title":  "Log in",
		"Form":   forms.LoginForm{},
		"Errors": forms.Errors{},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	form := forms.LoginForm{
		Identifier: c.PostForm("identifier"),
		Password:   c.PostForm("password"),
	}
	if errs := form.Validate(); len(errs) > 0 {
		Render(c, http.StatusOK, "auth/login.html", gin.H{
			"Title":  "Log in",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	user, err := h.auth.Login(form.Identifier, form.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrHashFormat) {
			// Same generic message for both, nothing leaks
			Render(c, http.StatusOK, "auth/login.html", gin.H{
				"Title":  "Log in",
				"Form":   forms.LoginForm{Identifier: form.Identifier},
				"Errors": forms.Errors{},
				"Error":  "Invalid email/username or password. Please try again.",
			})
			return
		}
		RenderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	token, err := h.auth.IssueToken(user)
	if err != nil {
		// The token is informational, login proceeds without it
		logrus.WithError(err).WithField("user_id", user.ID).Warn("access token minting failed")
	}
	if err := auth.SaveSession(c, user, token); err != nil {
		RenderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", gin.H{
		"Title":  "Sign up",
		"Form":   forms.SignupForm{},
		"Errors": forms.Errors{},
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	form := forms.SignupForm{
		Username:        c.PostForm("username"),
		Email:           c.PostForm("email"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirm_password"),
	}
	if errs := form.Validate(); len(errs) > 0 {
		Render(c, http.StatusOK, "auth/register.html", gin.H{
			"Title":  "Sign up",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	user, err := h.auth.Signup(form.Username, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateUser) {
			Render(c, http.StatusOK, "auth/register.html", gin.H{
				"Title":  "Sign up",
				"Form":   form,
				"Errors": forms.Errors{},
				"Error":  "That username or email is already registered.",
			})
			return
		}
		Render(c, http.StatusOK, "auth/register.html", gin.H{
			"Title":  "Sign up",
			"Form":   form,
			"Errors": forms.Errors{},
			"Error":  "Could not create the account. Please try again.",
		})
		return
	}

	// Signup transitions straight to the logged-in state
	token, err := h.auth.IssueToken(user)
	if err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("access token minting failed")
	}
	if err := auth.SaveSession(c, user, token); err != nil {
		Render(c, http.StatusOK, "auth/login.html", gin.H{
			"Title":   "Log in",
			"Form":    forms.LoginForm{},
			"Errors":  forms.Errors{},
			"Success": "Account created. Please log in.",
		})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session. Idempotent, an anonymous call just redirects.
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearSession(c)
	c.Redirect(http.StatusFound, "/login")
}
