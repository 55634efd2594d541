package validation

import (
	"regexp"
)

// UsernamePattern определяет допустимый формат username
// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32

	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
	// MaxPasswordLen ограничение bcrypt
	MaxPasswordLen = 72
)

// ValidateUsername проверяет, что username соответствует требованиям
// Формат: только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
func ValidateUsername(username string) error {
	if username == "" {
		return fieldError("username", "cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fieldError("username", "must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fieldError("username", "must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fieldError("username", "can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidatePassword проверяет длину пароля
func ValidatePassword(password string) error {
	if password == "" {
		return fieldError("password", "cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fieldError("password", "must be at least %d characters long", MinPasswordLen)
	}

	if len(password) > MaxPasswordLen {
		return fieldError("password", "must not exceed %d bytes", MaxPasswordLen)
	}

	return nil
}
