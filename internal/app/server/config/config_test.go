package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cfg := &Config{}
		cfg.Auth.JWTSecret = "secret"
		cfg.Crypto.Algorithm = "aes-256-ctr"

		assert.NoError(t, cfg.validate())
	})

	// Отсутствие алгоритма шифрования — фатальная ошибка старта,
	// молчаливого значения по умолчанию быть не должно
	t.Run("MissingAlgorithm", func(t *testing.T) {
		cfg := &Config{}
		cfg.Auth.JWTSecret = "secret"

		err := cfg.validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ENCRYPT_ALGORITHM")
	})

	t.Run("MissingJWTSecret", func(t *testing.T) {
		cfg := &Config{}
		cfg.Crypto.Algorithm = "aes-256-ctr"

		err := cfg.validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})
}

func TestMustLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENCRYPT_ALGORITHM", "aes-256-cbc")
	t.Setenv("ENCRYPT_SECRET", "test-phrase")

	cfg := MustLoad()

	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "aes-256-cbc", cfg.Crypto.Algorithm)
	assert.Equal(t, "test-phrase", cfg.Crypto.Passphrase)
	assert.Equal(t, defaultRunAddress, cfg.Server.RunAddress)
	assert.Equal(t, defaultRateLimitMax, cfg.RateLimit.Max)
}
