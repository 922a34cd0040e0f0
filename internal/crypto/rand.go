package crypto

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
)

func RandomBytes(size int) ([]byte, error) {
	data := make([]byte, size)

	read, err := rand.Read(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != size {
		return nil, errors.New("unexpected number of read bytes")
	}

	return data, nil
}

// GenerateShareToken generates an unguessable token suitable for use as a
// bearer credential in share links
func GenerateShareToken() (string, error) {
	// 16 bytes (128 bits) of random data, enough for a negligible
	// collision probability
	bytes, err := RandomBytes(16)
	if err != nil {
		return "", errors.WithStack(err)
	}

	// Encode as base64 URL-safe string (no padding) for easy use in URLs
	token := base64.RawURLEncoding.EncodeToString(bytes)
	return token, nil
}
