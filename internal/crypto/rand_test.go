package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/pkg/errors"
)

func TestGenerateShareToken(t *testing.T) {
	token, err := GenerateShareToken()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 16, len(data); e != g {
		t.Errorf("len(data): expected '%d', got '%d'", e, g)
	}
}

func TestGenerateShareTokenUniqueness(t *testing.T) {
	seen := map[string]struct{}{}

	for i := 0; i < 1000; i++ {
		token, err := GenerateShareToken()
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if _, exists := seen[token]; exists {
			t.Fatalf("token '%s' generated twice", token)
		}

		seen[token] = struct{}{}
	}
}
