package model

import (
	"testing"
	"time"
)

func TestShareGrantExpired(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	owner := NewUserID()
	content := ContentRef{Kind: ContentKindPhoto, ID: "photo-1"}

	type testCase struct {
		Name     string
		Grant    ShareGrant
		Expected bool
	}

	testCases := []testCase{
		{
			Name:     "no expiration",
			Grant:    NewShareGrant(owner, content, "token-1"),
			Expected: false,
		},
		{
			Name:     "future expiration",
			Grant:    NewShareGrant(owner, content, "token-2", WithShareExpiration(now.Add(time.Hour))),
			Expected: false,
		},
		{
			Name:     "past expiration",
			Grant:    NewShareGrant(owner, content, "token-3", WithShareExpiration(now.Add(-time.Hour))),
			Expected: true,
		},
		{
			Name:     "expiring exactly now",
			Grant:    NewShareGrant(owner, content, "token-4", WithShareExpiration(now)),
			Expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if e, g := tc.Expected, ShareGrantExpired(tc.Grant, now); e != g {
				t.Errorf("ShareGrantExpired(): expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestContentKindValid(t *testing.T) {
	for _, kind := range ContentKinds {
		if !kind.Valid() {
			t.Errorf("kind '%s' should be valid", kind)
		}
	}

	if ContentKind("video").Valid() {
		t.Error("kind 'video' should not be valid")
	}

	if ContentKind("").Valid() {
		t.Error("empty kind should not be valid")
	}
}

func TestContentKindOwnershipChecked(t *testing.T) {
	checked := map[ContentKind]bool{
		ContentKindPhoto:    true,
		ContentKindAlbum:    true,
		ContentKindTag:      false,
		ContentKindCategory: false,
	}

	for kind, expected := range checked {
		if e, g := expected, kind.OwnershipChecked(); e != g {
			t.Errorf("%s.OwnershipChecked(): expected '%v', got '%v'", kind, e, g)
		}
	}
}
