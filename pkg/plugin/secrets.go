package plugin

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"strings"
)

// SecretDecoder decodes sensitive config values just-in-time. Decoded
// values live only in the request-scoped Instance and are never persisted
// or logged.
type SecretDecoder interface {
	Decode(value string) (string, error)
}

// PlainDecoder passes values through unchanged. Used in self-host modes
// where the operator stores secrets directly.
type PlainDecoder struct{}

// Decode returns the value as-is.
func (PlainDecoder) Decode(value string) (string, error) { return value, nil }

const aesGCMPrefix = "enc:v1:"

// AESGCMDecoder decodes values of the form "enc:v1:<base64(nonce||ciphertext)>"
// with a 256-bit key. Values without the prefix pass through unchanged so
// mixed plain/encrypted configs keep working.
type AESGCMDecoder struct {
	aead cipher.AEAD
}

// NewAESGCMDecoder creates a decoder from a 32-byte key.
func NewAESGCMDecoder(key []byte) (*AESGCMDecoder, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("secret key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to init GCM: %w", err)
	}
	return &AESGCMDecoder{aead: aead}, nil
}

// Decode decrypts a prefixed value or passes a plain one through.
func (d *AESGCMDecoder) Decode(value string) (string, error) {
	if !strings.HasPrefix(value, aesGCMPrefix) {
		return value, nil
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, aesGCMPrefix))
	if err != nil {
		return "", fmt.Errorf("malformed encrypted value: %w", err)
	}
	ns := d.aead.NonceSize()
	if len(raw) < ns {
		return "", fmt.Errorf("malformed encrypted value: too short")
	}
	plain, err := d.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt value: %w", err)
	}
	return string(plain), nil
}

// DecodeInstance builds the runtime Instance view from a stored row,
// decoding the handler's sensitive fields. Non-string or absent fields
// are left untouched.
func DecodeInstance(id, typ, name string, enabled bool, storedConfig map[string]interface{}, h Handler, dec SecretDecoder) (*Instance, error) {
	cfg := make(map[string]interface{}, len(storedConfig))
	for k, v := range storedConfig {
		cfg[k] = v
	}

	if sf, ok := h.(SensitiveFielder); ok && dec != nil {
		for _, field := range sf.SensitiveFields() {
			raw, ok := cfg[field].(string)
			if !ok {
				continue
			}
			decoded, err := dec.Decode(raw)
			if err != nil {
				return nil, fmt.Errorf("failed to decode config field %q: %w", field, err)
			}
			cfg[field] = decoded
		}
	}

	return &Instance{ID: id, Type: typ, Name: name, Enabled: enabled, Config: cfg}, nil
}
