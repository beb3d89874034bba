// Package validation contains the pure input checks applied before the
// register, login and post-creation handlers run. Each validator returns a
// pass/fail flag plus a field-keyed map of messages suitable for the
// {message, errors} error body.
package validation

import (
	"net/mail"
	"strings"
)

const (
	usernameMinLen = 2
	usernameMaxLen = 30
	passwordMinLen = 6
)

// RegisterInput is the expected shape of a registration request body.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput is the expected shape of a login request body.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TweetInput is the expected shape of a post-creation request body.
type TweetInput struct {
	Text string `json:"text"`
}

// ValidateRegisterInput checks username, email and password presence and shape.
func ValidateRegisterInput(input RegisterInput) (bool, map[string]string) {
	errs := map[string]string{}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		errs["username"] = "Username is required"
	} else if l := len([]rune(username)); l < usernameMinLen || l > usernameMaxLen {
		errs["username"] = "Username must be between 2 and 30 characters"
	}

	if err := checkEmail(input.Email); err != "" {
		errs["email"] = err
	}

	if input.Password == "" {
		errs["password"] = "Password is required"
	} else if len(input.Password) < passwordMinLen {
		errs["password"] = "Password must be at least 6 characters"
	}

	return len(errs) == 0, errs
}

// ValidateLoginInput checks email and password presence.
func ValidateLoginInput(input LoginInput) (bool, map[string]string) {
	errs := map[string]string{}

	if err := checkEmail(input.Email); err != "" {
		errs["email"] = err
	}
	if input.Password == "" {
		errs["password"] = "Password is required"
	}

	return len(errs) == 0, errs
}

// ValidateTweetInput checks that the post text is present and non-empty.
func ValidateTweetInput(input TweetInput) (bool, map[string]string) {
	errs := map[string]string{}

	if strings.TrimSpace(input.Text) == "" {
		errs["text"] = "Text is required"
	}

	return len(errs) == 0, errs
}

func checkEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return "Email is required"
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return "Email is invalid"
	}
	return ""
}
