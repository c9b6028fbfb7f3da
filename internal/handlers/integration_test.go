package handlers_test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"askstack/internal/auth"
	"askstack/internal/db"
	"askstack/internal/models"
	"askstack/internal/router"
	"askstack/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.Open("sqlite://" + filepath.Join(t.TempDir(), "handlers_test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))

	r := gin.New()
	r.Use(sessions.Sessions("askstack_session", cookie.NewStore([]byte("test-session-secret"))))
	r.HTMLRender = router.LoadTemplates("../../web/templates")

	cache, err := utils.NewCache(64)
	require.NoError(t, err)
	router.Register(r, database, auth.NewService(database, "test-jwt-secret"), cache)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, database
}

// newClient keeps cookies so a login survives across requests.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func noRedirect(client *http.Client) *http.Client {
	c := *client
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &c
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func signup(t *testing.T, client *http.Client, baseURL, username, email, password string) {
	t.Helper()
	resp, err := client.PostForm(baseURL+"/register", url.Values{
		"username":         {username},
		"email":            {email},
		"password":         {password},
		"confirm_password": {password},
	})
	require.NoError(t, err)
	page := body(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, page, "Questions", "signup should land on the question list")
}

func validContent() string {
	return strings.Repeat("x", 21)
}

func TestProtectedRoutesRedirectToLogin(t *testing.T) {
	srv, _ := newTestServer(t)
	client := noRedirect(newClient(t))

	for _, path := range []string{"/", "/ask", "/ask_question", "/question/1", "/answer/1", "/profile", "/settings", "/logout"} {
		resp, err := client.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
	}
}

func TestSignupLogsUserIn(t *testing.T) {
	srv, database := newTestServer(t)
	client := newClient(t)

	signup(t, client, srv.URL, "ada", "ada@example.com", "pw123456")

	var count int64
	require.NoError(t, database.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	resp, err := client.Get(srv.URL + "/profile")
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "ada@example.com")
}

func TestDuplicateSignupRerenders(t *testing.T) {
	srv, database := newTestServer(t)
	signup(t, newClient(t), srv.URL, "ada", "ada@example.com", "pw123456")

	resp, err := newClient(t).PostForm(srv.URL+"/register", url.Values{
		"username":         {"ada"},
		"email":            {"second@example.com"},
		"password":         {"pw123456"},
		"confirm_password": {"pw123456"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "already registered")

	var count int64
	require.NoError(t, database.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSignupValidationKeepsValues(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := newClient(t).PostForm(srv.URL+"/register", url.Values{
		"username":         {"ada"},
		"email":            {"not-an-email"},
		"password":         {"pw"},
		"confirm_password": {"other"},
	})
	require.NoError(t, err)
	page := body(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, page, "Email address is not valid.")
	assert.Contains(t, page, "Passwords do not match.")
	assert.Contains(t, page, `value="ada"`, "submitted values survive a failed validation")
}

func TestLoginWrongPassword(t *testing.T) {
	srv, _ := newTestServer(t)
	signup(t, newClient(t), srv.URL, "ada", "ada@example.com", "pw123456")

	client := newClient(t)
	resp, err := client.PostForm(srv.URL+"/login", url.Values{
		"identifier": {"ada@example.com"},
		"password":   {"wrong"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Invalid email/username or password")

	// No session was established
	check, err := noRedirect(client).Get(srv.URL + "/profile")
	require.NoError(t, err)
	check.Body.Close()
	assert.Equal(t, http.StatusFound, check.StatusCode)
}

func TestLoginByUsername(t *testing.T) {
	srv, _ := newTestServer(t)
	signup(t, newClient(t), srv.URL, "ada", "ada@example.com", "pw123456")

	client := newClient(t)
	resp, err := client.PostForm(srv.URL+"/login", url.Values{
		"identifier": {"ada"},
		"password":   {"pw123456"},
	})
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "Questions")
}

func TestAskQuestionContentLength(t *testing.T) {
	srv, database := newTestServer(t)
	client := newClient(t)
	signup(t, client, srv.URL, "ada", "ada@example.com", "pw123456")

	// 20 characters: rejected, form re-rendered with the input intact
	resp, err := client.PostForm(srv.URL+"/ask_question", url.Values{
		"title":   {"Short one"},
		"content": {strings.Repeat("x", 20)},
		"tags":    {""},
	})
	require.NoError(t, err)
	page := body(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, page, "longer than 20 characters")
	assert.Contains(t, page, `value="Short one"`)

	var count int64
	require.NoError(t, database.Model(&models.Question{}).Count(&count).Error)
	assert.Zero(t, count)

	// 21 characters: accepted, redirect to the listing
	resp, err = client.PostForm(srv.URL+"/ask_question", url.Values{
		"title":   {"Long enough"},
		"content": {validContent()},
		"tags":    {"go, web"},
	})
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "Long enough")

	require.NoError(t, database.Model(&models.Question{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestQuestionDetailAndAnswerFlow(t *testing.T) {
	srv, database := newTestServer(t)
	client := newClient(t)
	signup(t, client, srv.URL, "ada", "ada@example.com", "pw123456")

	resp, err := client.PostForm(srv.URL+"/ask_question", url.Values{
		"title":   {"How do goroutines work?"},
		"content": {validContent()},
		"tags":    {"go,concurrency"},
	})
	require.NoError(t, err)
	body(t, resp)

	var question models.Question
	require.NoError(t, database.First(&question).Error)

	detail, err := client.Get(srv.URL + "/question/1")
	require.NoError(t, err)
	page := body(t, detail)
	assert.Equal(t, http.StatusOK, detail.StatusCode)
	assert.Contains(t, page, "How do goroutines work?")
	assert.Contains(t, page, "concurrency")

	answerResp, err := client.PostForm(srv.URL+"/question/1", url.Values{
		"content": {"They are scheduled by the runtime."},
	})
	require.NoError(t, err)
	answerPage := body(t, answerResp)
	assert.Equal(t, http.StatusOK, answerResp.StatusCode)
	assert.Contains(t, answerPage, "They are scheduled by the runtime.")

	// The counter the schema carries stays at zero
	require.NoError(t, database.First(&question).Error)
	assert.Zero(t, question.TotalAnswers)
}

func TestQuestionNotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	signup(t, client, srv.URL, "ada", "ada@example.com", "pw123456")

	resp, err := client.Get(srv.URL + "/question/999")
	require.NoError(t, err)
	page := body(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, page, "Question not found")
}

func TestStandaloneAnswerForm(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	signup(t, client, srv.URL, "ada", "ada@example.com", "pw123456")

	resp, err := client.PostForm(srv.URL+"/ask_question", url.Values{
		"title":   {"Standalone?"},
		"content": {validContent()},
		"tags":    {""},
	})
	require.NoError(t, err)
	body(t, resp)

	form, err := client.Get(srv.URL + "/answer/1")
	require.NoError(t, err)
	assert.Contains(t, body(t, form), "Standalone?")

	submitted, err := client.PostForm(srv.URL+"/answer/1", url.Values{
		"content": {"Yes, it posts back to the question."},
	})
	require.NoError(t, err)
	assert.Contains(t, body(t, submitted), "Yes, it posts back to the question.")
}

func TestLogoutDropsSession(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	signup(t, client, srv.URL, "ada", "ada@example.com", "pw123456")

	resp, err := client.Get(srv.URL + "/logout")
	require.NoError(t, err)
	body(t, resp)

	for _, path := range []string{"/", "/profile", "/settings"} {
		check, err := noRedirect(client).Get(srv.URL + path)
		require.NoError(t, err)
		check.Body.Close()
		assert.Equal(t, http.StatusFound, check.StatusCode, path)
		assert.Equal(t, "/login", check.Header.Get("Location"), path)
	}
}

func TestListPaginationOverflowPage(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	signup(t, client, srv.URL, "ada", "ada@example.com", "pw123456")

	resp, err := client.PostForm(srv.URL+"/ask_question", url.Values{
		"title":   {"Only one"},
		"content": {validContent()},
		"tags":    {""},
	})
	require.NoError(t, err)
	body(t, resp)

	overflow, err := client.Get(srv.URL + "/?page=5")
	require.NoError(t, err)
	page := body(t, overflow)
	assert.Equal(t, http.StatusOK, overflow.StatusCode)
	assert.Contains(t, page, "No questions on this page.")
}
