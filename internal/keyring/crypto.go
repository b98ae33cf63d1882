package keyring

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize   = 16
	nonceSize  = 12
	keySize    = 32
	secretSize = 32
	argonTime  = 3
	argonMem   = 64 * 1024
	argonPar   = 4
)

// sealer encrypts vault values at rest with AES-256-GCM under an Argon2id
// key derived from a per-installation secret.
// Sealed format: [16-byte salt][12-byte nonce][ciphertext].
type sealer struct {
	secret []byte
}

// loadOrCreateSecret reads the sealing secret from path, generating and
// persisting a fresh one (0600) on first run.
func loadOrCreateSecret(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		secret, err := hex.DecodeString(string(data))
		if err != nil {
			return nil, fmt.Errorf("decode keyring secret: %w", err)
		}
		return secret, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read keyring secret: %w", err)
	}

	secret := make([]byte, secretSize)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return nil, fmt.Errorf("generate keyring secret: %w", err)
	}
	if err := os.WriteFile(path, []byte(hex.EncodeToString(secret)), 0600); err != nil {
		return nil, fmt.Errorf("write keyring secret: %w", err)
	}
	return secret, nil
}

func (s *sealer) deriveKey(salt []byte) []byte {
	return argon2.IDKey(s.secret, salt, argonTime, argonMem, argonPar, keySize)
}

func (s *sealer) seal(plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	block, err := aes.NewCipher(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	out := make([]byte, 0, saltSize+nonceSize+len(ciphertext))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, ciphertext...)
	return out, nil
}

func (s *sealer) open(sealed []byte) ([]byte, error) {
	if len(sealed) < saltSize+nonceSize {
		return nil, fmt.Errorf("sealed value too small")
	}

	salt := sealed[:saltSize]
	nonce := sealed[saltSize : saltSize+nonceSize]
	ciphertext := sealed[saltSize+nonceSize:]

	block, err := aes.NewCipher(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("open sealed value: %w", err)
	}
	return plaintext, nil
}
