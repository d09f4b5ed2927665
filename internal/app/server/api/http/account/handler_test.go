package account

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/token"
	"notekeeper/internal/domain/user"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) SignUp(ctx context.Context, email, password string) (user.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (user.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(raw string) (token.Identity, error) {
	args := m.Called(raw)
	return args.Get(0).(token.Identity), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.Default()
}

func TestHandler_Signup(t *testing.T) {
	input := &signupInput{}
	input.Body.Email = "user@example.com"
	input.Body.Password = "secret1"

	t.Run("Success", func(t *testing.T) {
		users := new(MockUserService)
		tokens := new(MockTokenService)
		h := NewHandler(users, tokens, testLogger(), nil)

		users.On("SignUp", mock.Anything, "user@example.com", "secret1").
			Return(user.User{UUID: "uuid-1", Email: "user@example.com"}, nil)
		tokens.On("Issue", "uuid-1", "user@example.com").Return("signed-token", nil)

		resp, err := h.signup(context.Background(), input)

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", resp.Body.Token)
		assert.Equal(t, "User created successfully", resp.Body.Message)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		users := new(MockUserService)
		h := NewHandler(users, new(MockTokenService), testLogger(), nil)

		users.On("SignUp", mock.Anything, "user@example.com", "secret1").
			Return(user.User{}, user.ErrEmailTaken)

		resp, err := h.signup(context.Background(), input)

		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already in use")
	})

	t.Run("ValidationError", func(t *testing.T) {
		users := new(MockUserService)
		h := NewHandler(users, new(MockTokenService), testLogger(), nil)

		users.On("SignUp", mock.Anything, "user@example.com", "secret1").
			Return(user.User{}, fmt.Errorf("%w: must be a valid email address", user.ErrInvalidInput))

		resp, err := h.signup(context.Background(), input)

		assert.Nil(t, resp)
		assert.Error(t, err)
		// Клиент видит текст валидатора без служебного префикса
		assert.Contains(t, err.Error(), "must be a valid email address")
		assert.NotContains(t, err.Error(), "invalid input")
	})

	t.Run("TokenIssueFails", func(t *testing.T) {
		users := new(MockUserService)
		tokens := new(MockTokenService)
		h := NewHandler(users, tokens, testLogger(), nil)

		users.On("SignUp", mock.Anything, "user@example.com", "secret1").
			Return(user.User{UUID: "uuid-1", Email: "user@example.com"}, nil)
		tokens.On("Issue", "uuid-1", "user@example.com").Return("", errors.New("boom"))

		resp, err := h.signup(context.Background(), input)

		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not created")
	})
}

// Короткий пароль должен дойти до доменного валидатора и вернуться как
// 400 с его сообщением 1:1, а не споткнуться о валидацию схемы запроса
func TestHandler_SignupValidationStatus(t *testing.T) {
	users := new(MockUserService)
	h := NewHandler(users, new(MockTokenService), testLogger(), nil)

	_, api := humatest.New(t)
	h.SetupRoutes(api)

	users.On("SignUp", mock.Anything, "user@example.com", "abc").
		Return(user.User{}, fmt.Errorf("%w: password must be between 6 and 100 characters long", user.ErrInvalidInput))

	resp := api.Post("/signup", map[string]any{
		"email":    "user@example.com",
		"password": "abc",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "password must be between 6 and 100 characters long")
	assert.NotContains(t, resp.Body.String(), "invalid input")
	users.AssertExpectations(t)
}

func TestHandler_Login(t *testing.T) {
	input := &loginInput{}
	input.Body.Email = "user@example.com"
	input.Body.Password = "secret1"

	t.Run("Success", func(t *testing.T) {
		users := new(MockUserService)
		tokens := new(MockTokenService)
		h := NewHandler(users, tokens, testLogger(), nil)

		users.On("Login", mock.Anything, "user@example.com", "secret1").
			Return(user.User{UUID: "uuid-1", Email: "user@example.com"}, nil)
		tokens.On("Issue", "uuid-1", "user@example.com").Return("signed-token", nil)

		resp, err := h.login(context.Background(), input)

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", resp.Body.Token)
		assert.Equal(t, "User logged in successfully", resp.Body.Message)
	})

	// Любая причина отказа наружу выглядит одинаково
	t.Run("UniformFailureMessage", func(t *testing.T) {
		for _, cause := range []error{user.ErrInvalidCredentials, user.ErrNotFound, errors.New("db down")} {
			users := new(MockUserService)
			h := NewHandler(users, new(MockTokenService), testLogger(), nil)

			users.On("Login", mock.Anything, "user@example.com", "secret1").
				Return(user.User{}, cause)

			resp, err := h.login(context.Background(), input)

			assert.Nil(t, resp)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "Invalid credentials")
		}
	})
}
