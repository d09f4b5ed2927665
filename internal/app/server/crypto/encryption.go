package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrDecode возвращается при повреждённом или чужом шифртексте.
// Для вызывающего это всегда «неверные учётные данные», не падение запроса.
var ErrDecode = errors.New("credential decode failed")

// Codec — обратимое кодирование хранимых паролей.
// NOTE: это осознанное отступление от one-way хэширования: оригинальная
// система сравнивает пароли через decode-and-compare. Кодек изолирует
// эту семантику, чтобы её можно было заменить, не трогая вызывающих.
type Codec struct {
	algorithm string
	key       []byte
}

const ivSize = aes.BlockSize

// NewCodec строит кодек по имени алгоритма и парольной фразе.
// Ключ — SHA-256 от фразы. Неизвестный алгоритм — ошибка старта процесса.
func NewCodec(algorithm, passphrase string) (*Codec, error) {
	switch algorithm {
	case "aes-256-ctr", "aes-256-cbc":
	default:
		return nil, fmt.Errorf("unsupported cipher algorithm %q", algorithm)
	}

	hash := sha256.Sum256([]byte(passphrase))
	return &Codec{
		algorithm: algorithm,
		key:       hash[:],
	}, nil
}

// Encode шифрует plaintext со свежим случайным IV.
// Формат: hex(iv) + ":" + hex(ciphertext), самоописываемый для Decode.
func (c *Codec) Encode(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	var ciphertext []byte
	switch c.algorithm {
	case "aes-256-ctr":
		ciphertext = make([]byte, len(plaintext))
		cipher.NewCTR(block, iv).XORKeyStream(ciphertext, []byte(plaintext))
	case "aes-256-cbc":
		padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
		ciphertext = make([]byte, len(padded))
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	}

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ciphertext), nil
}

// Decode восстанавливает plaintext из самоописываемой строки Encode.
func (c *Codec) Decode(encoded string) (string, error) {
	ivHex, dataHex, found := strings.Cut(encoded, ":")
	if !found {
		return "", ErrDecode
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != ivSize {
		return "", ErrDecode
	}

	ciphertext, err := hex.DecodeString(dataHex)
	if err != nil {
		return "", ErrDecode
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	switch c.algorithm {
	case "aes-256-ctr":
		plaintext := make([]byte, len(ciphertext))
		cipher.NewCTR(block, iv).XORKeyStream(plaintext, ciphertext)
		return string(plaintext), nil
	case "aes-256-cbc":
		if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
			return "", ErrDecode
		}
		plaintext := make([]byte, len(ciphertext))
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
		unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
		if err != nil {
			return "", ErrDecode
		}
		return string(unpadded), nil
	}

	return "", ErrDecode
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrDecode
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, ErrDecode
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, ErrDecode
		}
	}
	return data[:len(data)-padding], nil
}
