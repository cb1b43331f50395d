package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

var emailLike = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateSignup は会員登録フォームの同期チェック。
func ValidateSignup(email string, password string) error {
	email = strings.TrimSpace(email)

	if email == "" {
		return ErrEmailRequired
	}
	if !emailLike.MatchString(email) {
		return ErrInvalidEmail
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	return nil
}
