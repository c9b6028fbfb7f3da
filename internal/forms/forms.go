// Package forms validates submitted form data. Each form keeps the raw
// submitted values so a failed submission re-renders without losing input,
// and Validate returns field-level errors instead of raising anything.
package forms

import (
	"net/mail"
)

// Errors maps a field name to its validation message. Empty map means valid.
type Errors map[string]string

type LoginForm struct {
	Identifier string // email or username
	Password   string
}

func (f *LoginForm) Validate() Errors {
	errs := Errors{}
	if f.Identifier == "" {
		errs["identifier"] = "Email or username is required."
	}
	if f.Password == "" {
		errs["password"] = "Password is required."
	}
	return errs
}

type SignupForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

func (f *SignupForm) Validate() Errors {
	errs := Errors{}
	if f.Username == "" {
		errs["username"] = "Username is required."
	} else if len(f.Username) < 2 || len(f.Username) > 20 {
		errs["username"] = "Username must be between 2 and 20 characters."
	}
	if f.Email == "" {
		errs["email"] = "Email is required."
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		errs["email"] = "Email address is not valid."
	}
	if f.Password == "" {
		errs["password"] = "Password is required."
	}
	if f.ConfirmPassword == "" {
		errs["confirm_password"] = "Please confirm the password."
	} else if f.Password != "" && f.ConfirmPassword != f.Password {
		errs["confirm_password"] = "Passwords do not match."
	}
	return errs
}

type QuestionForm struct {
	Title   string
	Content string
	Tags    string
}

func (f *QuestionForm) Validate() Errors {
	errs := Errors{}
	if f.Title == "" {
		errs["title"] = "Title is required."
	}
	if f.Content == "" {
		errs["content"] = "Content is required."
	}
	return errs
}

type AnswerForm struct {
	Content string
}

func (f *AnswerForm) Validate() Errors {
	errs := Errors{}
	if f.Content == "" {
		errs["content"] = "Content is required."
	}
	return errs
}
