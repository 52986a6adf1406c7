package services

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

var (
	ErrCredentialsInvalid = errors.New("credentials invalid")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrFullNameRequired   = errors.New("full name required")
	ErrPasswordMismatch   = errors.New("password mismatch")
)

var usernameFormatRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]{2,31}$`)

// NormalizeUsername lowercases and trims a username; an empty string means
// the input did not satisfy the username format.
func NormalizeUsername(raw string) string {
	username := strings.ToLower(strings.TrimSpace(raw))
	if !usernameFormatRegex.MatchString(username) {
		return ""
	}
	return username
}

func NormalizeCredentialsInput(usernameRaw string, passwordRaw string) (string, string, error) {
	username := strings.ToLower(strings.TrimSpace(usernameRaw))
	password := strings.TrimSpace(passwordRaw)
	if username == "" || password == "" {
		return "", "", ErrCredentialsInvalid
	}
	return username, password, nil
}

type RegistrationInput struct {
	Username string
	Password string
	FullName string
	Email    string
}

func ValidateRegistrationInput(usernameRaw, password, confirmPassword, fullNameRaw, emailRaw string) (RegistrationInput, error) {
	username := NormalizeUsername(usernameRaw)
	if username == "" {
		return RegistrationInput{}, ErrInvalidUsername
	}

	if password != confirmPassword {
		return RegistrationInput{}, ErrPasswordMismatch
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return RegistrationInput{}, err
	}

	fullName := strings.TrimSpace(fullNameRaw)
	if fullName == "" {
		return RegistrationInput{}, ErrFullNameRequired
	}

	email := strings.ToLower(strings.TrimSpace(emailRaw))
	if _, err := mail.ParseAddress(email); err != nil {
		return RegistrationInput{}, ErrInvalidEmail
	}

	return RegistrationInput{
		Username: username,
		Password: password,
		FullName: fullName,
		Email:    email,
	}, nil
}
