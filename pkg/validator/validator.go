package validator

import (
	"net/mail"
	"net/url"
	"strings"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func ValidateRegister(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)

	if password == "" {
		errs.Add("password", "Password is required")
	} else if len(password) < 8 {
		errs.Add("password", "Password must be at least 8 characters")
	}

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateProfile(name, avatarURL string) ValidationErrors {
	errs := make(ValidationErrors)

	name = strings.TrimSpace(name)
	if name == "" {
		errs.Add("name", "Display name is required")
	} else if len(name) > 100 {
		errs.Add("name", "Display name is too long")
	}

	if avatarURL = strings.TrimSpace(avatarURL); avatarURL != "" && !isValidURL(avatarURL) {
		errs.Add("avatar", "Avatar must be a valid http(s) URL")
	}

	return errs
}

func ValidateLink(title, linkURL string) ValidationErrors {
	errs := make(ValidationErrors)

	title = strings.TrimSpace(title)
	if title == "" {
		errs.Add("title", "Title is required")
	} else if len(title) > 100 {
		errs.Add("title", "Title is too long")
	}

	linkURL = strings.TrimSpace(linkURL)
	if linkURL == "" {
		errs.Add("url", "URL is required")
	} else if !isValidURL(linkURL) {
		errs.Add("url", "URL must be a valid http(s) URL")
	}

	return errs
}

func validateEmail(email string, errs ValidationErrors) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
