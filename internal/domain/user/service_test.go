package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/crypto"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u User) (User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func newTestCodec(t *testing.T) *crypto.Codec {
	t.Helper()
	codec, err := crypto.NewCodec("aes-256-ctr", "encryptSecret")
	require.NoError(t, err)
	return codec
}

func TestService_SignUp(t *testing.T) {
	mockRepo := new(MockRepository)
	codec := newTestCodec(t)
	service := NewService(mockRepo, NewCredentialsValidator(), codec, slog.Default())

	email := "a@x.com"
	password := "secret1"

	// Пароль должен уходить в репозиторий уже закодированным
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u User) bool {
		if u.Email != email || u.UUID == "" || u.Password == password {
			return false
		}
		decoded, err := codec.Decode(u.Password)
		return err == nil && decoded == password
	})).Return(User{ID: 1, UUID: "uuid-1", Email: email}, nil)

	created, err := service.SignUp(context.Background(), email, password)
	assert.NoError(t, err)
	assert.Equal(t, "uuid-1", created.UUID)

	mockRepo.AssertExpectations(t)
}

func TestService_SignUp_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "empty email", email: "", password: "secret1"},
		{name: "bad email", email: "not-an-email", password: "secret1"},
		{name: "short password", email: "a@x.com", password: "12345"},
		{name: "long password", email: "a@x.com", password: string(make([]byte, 101))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, NewCredentialsValidator(), newTestCodec(t), slog.Default())

			_, err := service.SignUp(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidInput)
			mockRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestService_SignUp_EmailTaken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewCredentialsValidator(), newTestCodec(t), slog.Default())

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("User")).Return(User{}, ErrEmailTaken)

	_, err := service.SignUp(context.Background(), "a@x.com", "secret1")
	assert.ErrorIs(t, err, ErrEmailTaken)

	mockRepo.AssertExpectations(t)
}

func TestService_Login_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	codec := newTestCodec(t)
	service := NewService(mockRepo, NewCredentialsValidator(), codec, slog.Default())

	encoded, err := codec.Encode("secret1")
	require.NoError(t, err)

	stored := User{ID: 1, UUID: "uuid-1", Email: "a@x.com", Password: encoded}
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil)

	u, err := service.Login(context.Background(), "a@x.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, stored, u)

	mockRepo.AssertExpectations(t)
}

func TestService_Login_UserNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewCredentialsValidator(), newTestCodec(t), slog.Default())

	mockRepo.On("FindByEmail", mock.Anything, "nobody@x.com").Return(User{}, ErrNotFound)

	_, err := service.Login(context.Background(), "nobody@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	codec := newTestCodec(t)
	service := NewService(mockRepo, NewCredentialsValidator(), codec, slog.Default())

	encoded, err := codec.Encode("correct-password")
	require.NoError(t, err)

	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").
		Return(User{ID: 1, UUID: "uuid-1", Email: "a@x.com", Password: encoded}, nil)

	_, err = service.Login(context.Background(), "a@x.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestService_Login_CorruptStoredPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewCredentialsValidator(), newTestCodec(t), slog.Default())

	// Не формат iv:шифртекст — decode обязан провалиться, но не уронить запрос
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").
		Return(User{ID: 1, UUID: "uuid-1", Email: "a@x.com", Password: "garbage"}, nil)

	_, err := service.Login(context.Background(), "a@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestService_Login_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewCredentialsValidator(), newTestCodec(t), slog.Default())

	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(User{}, errors.New("database error"))

	_, err := service.Login(context.Background(), "a@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}
