package handlers

import (
	"net/http"
	"time"

	"askstack/internal/middleware"
	"askstack/internal/store"
	"askstack/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	questions *store.QuestionStore
}

func NewUserHandler(questions *store.QuestionStore) *UserHandler {
	return &UserHandler{questions: questions}
}

// Profile lists the current user's own questions.
func (h *UserHandler) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	questions, err := h.questions.ByUser(user.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load your questions. Please try again.")
		return
	}

	now := time.Now()
	for i := range questions {
		questions[i].TimeAgo = utils.TimeAgo(questions[i].CreatedAt, now)
	}

	Render(c, http.StatusOK, "user/profile.html", gin.H{
		"Title":     user.Username,
		"User":      user,
		"Questions": questions,
	})
}

// Settings is render-only for now, account fields are not editable yet.
func (h *UserHandler) Settings(c *gin.Context) {
	user := middleware.CurrentUser(c)
	Render(c, http.StatusOK, "user/settings.html", gin.H{
		"Title": "Settings",
		"User":  user,
	})
}
