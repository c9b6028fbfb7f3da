package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"askstack/internal/forms"
	"askstack/internal/middleware"
	"askstack/internal/store"
	"askstack/internal/utils"

	"github.com/gin-gonic/gin"
)

// The /answer/:id pair is a standalone submission form for one question,
// separate from the inline form on the question page.

func (h *QuestionHandler) ShowAnswerForm(c *gin.Context) {
	h.renderAnswerForm(c, forms.AnswerForm{}, forms.Errors{}, "")
}

func (h *QuestionHandler) SubmitAnswer(c *gin.Context) {
	user := middleware.CurrentUser(c)
	questionID := utils.StringToUint(c.Param("id"))

	form := forms.AnswerForm{Content: c.PostForm("content")}
	if errs := form.Validate(); len(errs) > 0 {
		h.renderAnswerForm(c, form, errs, "")
		return
	}

	if _, err := h.answers.Create(questionID, form.Content, user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "Question not found.")
			return
		}
		h.renderAnswerForm(c, form, forms.Errors{},
			"Something went wrong saving your answer. Please try again.")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/question/%d", questionID))
}

func (h *QuestionHandler) renderAnswerForm(c *gin.Context, form forms.AnswerForm, errs forms.Errors, flash string) {
	questionID := utils.StringToUint(c.Param("id"))

	question, err := h.questions.Get(questionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "Question not found.")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not load the question. Please try again.")
		return
	}

	Render(c, http.StatusOK, "question/answer.html", gin.H{
		"Title":    "Answer: " + question.Title,
		"Question": question,
		"Form":     form,
		"Errors":   errs,
		"Flash":    flash,
	})
}
