package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodec_UnknownAlgorithm(t *testing.T) {
	_, err := NewCodec("rot13", "secret")
	assert.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		plaintext string
	}{
		{name: "ctr short", algorithm: "aes-256-ctr", plaintext: "secret1"},
		{name: "ctr unicode", algorithm: "aes-256-ctr", plaintext: "пароль-🔑"},
		{name: "ctr max length", algorithm: "aes-256-ctr", plaintext: strings.Repeat("x", 100)},
		{name: "cbc short", algorithm: "aes-256-cbc", plaintext: "secret1"},
		{name: "cbc block aligned", algorithm: "aes-256-cbc", plaintext: strings.Repeat("a", 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := NewCodec(tt.algorithm, "encryptSecret")
			require.NoError(t, err)

			encoded, err := codec.Encode(tt.plaintext)
			require.NoError(t, err)

			decoded, err := codec.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, decoded)
		})
	}
}

func TestCodec_EncodeIsNonDeterministic(t *testing.T) {
	codec, err := NewCodec("aes-256-ctr", "encryptSecret")
	require.NoError(t, err)

	first, err := codec.Encode("secret1")
	require.NoError(t, err)
	second, err := codec.Encode("secret1")
	require.NoError(t, err)

	// Свежий IV на каждый вызов
	assert.NotEqual(t, first, second)
}

func TestCodec_EncodedFormat(t *testing.T) {
	codec, err := NewCodec("aes-256-ctr", "encryptSecret")
	require.NoError(t, err)

	encoded, err := codec.Encode("secret1")
	require.NoError(t, err)

	parts := strings.SplitN(encoded, ":", 2)
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], ivSize*2) // hex-encoded IV
}

func TestCodec_Decode_Corrupt(t *testing.T) {
	codec, err := NewCodec("aes-256-cbc", "encryptSecret")
	require.NoError(t, err)

	encoded, err := codec.Encode("secret1")
	require.NoError(t, err)

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "no delimiter", encoded: "deadbeef"},
		{name: "bad hex iv", encoded: "zz:deadbeef"},
		{name: "short iv", encoded: "dead:beef"},
		{name: "bad hex payload", encoded: encoded[:33] + "not-hex"},
		{name: "truncated payload", encoded: encoded[:len(encoded)-2]},
		{name: "empty", encoded: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.encoded)
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}

func TestCodec_Decode_WrongKey(t *testing.T) {
	encoder, err := NewCodec("aes-256-cbc", "encryptSecret")
	require.NoError(t, err)
	decoder, err := NewCodec("aes-256-cbc", "otherSecret")
	require.NoError(t, err)

	encoded, err := encoder.Encode("secret1")
	require.NoError(t, err)

	decoded, err := decoder.Decode(encoded)
	if err == nil {
		// CBC-паддинг изредка сходится и на чужом ключе; важно,
		// что исходный пароль при этом не восстанавливается.
		assert.NotEqual(t, "secret1", decoded)
	} else {
		assert.ErrorIs(t, err, ErrDecode)
	}
}
