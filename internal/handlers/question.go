package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"askstack/internal/forms"
	"askstack/internal/middleware"
	"askstack/internal/models"
	"askstack/internal/store"
	"askstack/internal/utils"

	"github.com/gin-gonic/gin"
)

const listCacheTTL = time.Minute

type QuestionHandler struct {
	questions *store.QuestionStore
	answers   *store.AnswerStore
	cache     *utils.Cache
}

func NewQuestionHandler(questions *store.QuestionStore, answers *store.AnswerStore, cache *utils.Cache) *QuestionHandler {
	return &QuestionHandler{questions: questions, answers: answers, cache: cache}
}

// listPage is what the cache holds per listing page. TimeAgo is computed per
// request on top of it, so the cached data stays request-independent.
type listPage struct {
	Questions  []models.Question
	Pagination store.Pagination
}

func (h *QuestionHandler) List(c *gin.Context) {
	page := 1
	if p := c.Query("page"); p != "" {
		if n := utils.StringToInt(p); n > 0 {
			page = n
		}
	}

	cacheKey := fmt.Sprintf("questions:page:%d", page)
	var data listPage
	if cached := h.cache.Get(cacheKey); cached != nil {
		data = cached.(listPage)
	} else {
		questions, pagination, err := h.questions.List(page, store.DefaultPageSize)
		if err != nil {
			RenderError(c, http.StatusInternalServerError, "Could not load questions. Please try again.")
			return
		}
		data = listPage{Questions: questions, Pagination: pagination}
		h.cache.Set(cacheKey, data, listCacheTTL)
	}

	now := time.Now()
	questions := make([]models.Question, len(data.Questions))
	copy(questions, data.Questions)
	for i := range questions {
		questions[i].TimeAgo = utils.TimeAgo(questions[i].CreatedAt, now)
	}

	Render(c, http.StatusOK, "question/list.html", gin.H{
		"Title":      "Questions",
		"Questions":  questions,
		"Pagination": data.Pagination,
	})
}

func (h *QuestionHandler) ShowAsk(c *gin.Context) {
	Render(c, http.StatusOK, "question/ask.html", gin.H{
		"Title":  "Ask a question",
		"Form":   forms.QuestionForm{},
		"Errors": forms.Errors{},
	})
}

func (h *QuestionHandler) Ask(c *gin.Context) {
	form := questionFormFrom(c)
	if errs := form.Validate(); len(errs) > 0 {
		Render(c, http.StatusOK, "question/ask.html", gin.H{
			"Title":  "Ask a question",
			"Form":   form,
			"Errors": errs,
		})
		return
	}
	h.create(c, "question/ask.html", "Ask a question", form)
}

func (h *QuestionHandler) ShowAskQuestion(c *gin.Context) {
	Render(c, http.StatusOK, "question/ask_question.html", gin.H{
		"Title":  "Ask a question",
		"Form":   forms.QuestionForm{},
		"Errors": forms.Errors{},
	})
}

func (h *QuestionHandler) AskQuestion(c *gin.Context) {
	h.create(c, "question/ask_question.html", "Ask a question", questionFormFrom(c))
}

func questionFormFrom(c *gin.Context) forms.QuestionForm {
	return forms.QuestionForm{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
		Tags:    c.PostForm("tags"),
	}
}

// create runs the shared persistence path for both ask flows. The store
// enforces the title and content-length rules; failures re-render the
// originating form with the submitted values intact.
func (h *QuestionHandler) create(c *gin.Context, view, title string, form forms.QuestionForm) {
	user := middleware.CurrentUser(c)
	_, err := h.questions.Create(form.Title, form.Content, models.SplitTags(form.Tags), user.ID)
	switch {
	case errors.Is(err, store.ErrEmptyTitle):
		Render(c, http.StatusOK, view, gin.H{
			"Title": title, "Form": form,
			"Errors": forms.Errors{"title": "Title is required."},
		})
	case errors.Is(err, store.ErrContentTooShort):
		Render(c, http.StatusOK, view, gin.H{
			"Title": title, "Form": form,
			"Errors": forms.Errors{"content": "Content must be longer than 20 characters."},
		})
	case err != nil:
		Render(c, http.StatusOK, view, gin.H{
			"Title": title, "Form": form, "Errors": forms.Errors{},
			"Error": "Could not save your question. Please try again.",
		})
	default:
		h.cache.Delete("questions:page:1")
		c.Redirect(http.StatusFound, "/")
	}
}

type answerView struct {
	models.Answer
	ContentHTML template.HTML
	TimeAgo     string
}

func (h *QuestionHandler) Detail(c *gin.Context) {
	h.renderDetail(c, http.StatusOK, forms.AnswerForm{}, forms.Errors{}, "")
}

func (h *QuestionHandler) CreateAnswer(c *gin.Context) {
	user := middleware.CurrentUser(c)
	questionID := utils.StringToUint(c.Param("id"))

	form := forms.AnswerForm{Content: c.PostForm("content")}
	if errs := form.Validate(); len(errs) > 0 {
		h.renderDetail(c, http.StatusOK, form, errs, "")
		return
	}

	if _, err := h.answers.Create(questionID, form.Content, user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "Question not found.")
			return
		}
		h.renderDetail(c, http.StatusOK, form, forms.Errors{},
			"Something went wrong saving your answer. Please try again.")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/question/%d", questionID))
}

func (h *QuestionHandler) renderDetail(c *gin.Context, code int, form forms.AnswerForm, errs forms.Errors, flash string) {
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

	answers, err := h.answers.ForQuestion(question.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load the question. Please try again.")
		return
	}

	now := time.Now()
	question.TimeAgo = utils.TimeAgo(question.CreatedAt, now)
	views := make([]answerView, 0, len(answers))
	for _, a := range answers {
		views = append(views, answerView{
			Answer:      a,
			ContentHTML: utils.RenderMarkdown(a.Content),
			TimeAgo:     utils.TimeAgo(a.CreatedAt, now),
		})
	}

	Render(c, code, "question/detail.html", gin.H{
		"Title":        question.Title,
		"Question":     question,
		"QuestionHTML": utils.RenderMarkdown(question.Content),
		"Answers":      views,
		"Form":         form,
		"Errors":       errs,
		"Flash":        flash,
	})
}
