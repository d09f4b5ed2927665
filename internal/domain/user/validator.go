package user

import (
	"fmt"
	"regexp"
)

const (
	MinPasswordLen = 6
	MaxPasswordLen = 100
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateSignUp(email, password string) error
	ValidateEmail(email string) error
	ValidatePassword(password string) error
}

type CredentialsValidator struct{}

func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) ValidateSignUp(email, password string) error {
	if err := v.ValidateEmail(email); err != nil {
		return err
	}
	return v.ValidatePassword(password)
}

func (v *CredentialsValidator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email address is required")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("must be a valid email address")
	}
	return nil
}

func (v *CredentialsValidator) ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < MinPasswordLen || len(password) > MaxPasswordLen {
		return fmt.Errorf("password must be between %d and %d characters long", MinPasswordLen, MaxPasswordLen)
	}
	return nil
}
