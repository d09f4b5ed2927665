package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsValidator_ValidateEmail(t *testing.T) {
	v := NewCredentialsValidator()

	tests := []struct {
		name        string
		email       string
		expectError bool
	}{
		{name: "valid", email: "a@x.com", expectError: false},
		{name: "valid with plus", email: "a+notes@x.co.uk", expectError: false},
		{name: "empty", email: "", expectError: true},
		{name: "no at", email: "ax.com", expectError: true},
		{name: "no domain", email: "a@", expectError: true},
		{name: "no tld", email: "a@x", expectError: true},
		{name: "spaces", email: "a b@x.com", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateEmail(tt.email)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredentialsValidator_ValidatePassword(t *testing.T) {
	v := NewCredentialsValidator()

	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{name: "minimum length", password: "123456", expectError: false},
		{name: "maximum length", password: strings.Repeat("x", 100), expectError: false},
		{name: "empty", password: "", expectError: true},
		{name: "too short", password: "12345", expectError: true},
		{name: "too long", password: strings.Repeat("x", 101), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePassword(tt.password)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
