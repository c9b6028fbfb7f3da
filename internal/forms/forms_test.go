package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginFormValidate(t *testing.T) {
	form := LoginForm{Identifier: "ada@example.com", Password: "hunter2"}
	assert.Empty(t, form.Validate())

	empty := LoginForm{}
	errs := empty.Validate()
	assert.Contains(t, errs, "identifier")
	assert.Contains(t, errs, "password")
}

func TestSignupFormValidate(t *testing.T) {
	valid := SignupForm{
		Username:        "ada",
		Email:           "ada@example.com",
		Password:        "hunter2",
		ConfirmPassword: "hunter2",
	}
	assert.Empty(t, valid.Validate())

	tests := []struct {
		name  string
		form  SignupForm
		field string
	}{
		{"missing username", SignupForm{Email: "a@b.com", Password: "x", ConfirmPassword: "x"}, "username"},
		{"username too short", SignupForm{Username: "a", Email: "a@b.com", Password: "x", ConfirmPassword: "x"}, "username"},
		{"username too long", SignupForm{Username: "abcdefghijklmnopqrstu", Email: "a@b.com", Password: "x", ConfirmPassword: "x"}, "username"},
		{"bad email", SignupForm{Username: "ada", Email: "not-an-email", Password: "x", ConfirmPassword: "x"}, "email"},
		{"missing password", SignupForm{Username: "ada", Email: "a@b.com", ConfirmPassword: "x"}, "password"},
		{"mismatched confirm", SignupForm{Username: "ada", Email: "a@b.com", Password: "x", ConfirmPassword: "y"}, "confirm_password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestSignupFormUsernameLengthBounds(t *testing.T) {
	form := SignupForm{Username: "ab", Email: "a@b.com", Password: "x", ConfirmPassword: "x"}
	assert.NotContains(t, form.Validate(), "username")

	form.Username = "abcdefghijklmnopqrst" // 20 chars
	assert.NotContains(t, form.Validate(), "username")
}

func TestQuestionFormValidate(t *testing.T) {
	form := QuestionForm{Title: "How?", Content: "details"}
	assert.Empty(t, form.Validate())

	errs := (&QuestionForm{}).Validate()
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "content")
}

func TestAnswerFormValidate(t *testing.T) {
	assert.Empty(t, (&AnswerForm{Content: "because"}).Validate())
	assert.Contains(t, (&AnswerForm{}).Validate(), "content")
}
