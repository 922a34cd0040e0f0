package shared

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lumapix/lumapix/internal/adapter/memory"
	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/lumapix/lumapix/internal/core/service"
	httpCtx "github.com/lumapix/lumapix/internal/http/context"
	"github.com/pkg/errors"
)

func TestResolveShare(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	shares := memory.NewShareStore()
	library := memory.NewLibraryStore()
	users := memory.NewUserStore()

	owner, err := users.CreateUser(ctx, model.NewUser("alice", "alice@example.net"), []byte("-"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	recipient, err := users.CreateUser(ctx, model.NewUser("bob", "bob@example.net"), []byte("-"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	photo, err := library.SavePhoto(ctx, model.NewPhoto(owner.ID(), "sunset.jpg", "image/jpeg", 2048), port.PhotoAssociations{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	photoRef := model.ContentRef{Kind: model.ContentKindPhoto, ID: string(photo.ID())}

	grants := []model.ShareGrant{
		model.NewShareGrant(owner.ID(), photoRef, "public-token", model.AsPublicShare()),
		model.NewShareGrant(owner.ID(), photoRef, "private-token", model.WithShareRecipient(recipient.ID())),
		model.NewShareGrant(owner.ID(), photoRef, "expired-token", model.AsPublicShare(), model.WithShareExpiration(now.Add(-time.Hour))),
	}

	for _, grant := range grants {
		if _, err := shares.CreateShareGrant(ctx, grant); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	access := service.NewShareAccess(shares, service.NewContentResolver(library), service.WithClock(func() time.Time {
		return now
	}))

	handler := NewHandler(access)

	type testCase struct {
		Name           string
		Token          string
		User           model.User
		ExpectedStatus int
		ExpectedKind   string
	}

	testCases := []testCase{
		{
			Name:           "unknown token",
			Token:          "no-such-token",
			ExpectedStatus: http.StatusNotFound,
			ExpectedKind:   "not_found",
		},
		{
			Name:           "expired token",
			Token:          "expired-token",
			ExpectedStatus: http.StatusForbidden,
			ExpectedKind:   "expired",
		},
		{
			Name:           "private token for anonymous",
			Token:          "private-token",
			ExpectedStatus: http.StatusForbidden,
			ExpectedKind:   "denied",
		},
		{
			Name:           "private token for recipient",
			Token:          "private-token",
			User:           recipient,
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:           "public token for anonymous",
			Token:          "public-token",
			ExpectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/"+tc.Token, nil)
			if tc.User != nil {
				req = req.WithContext(httpCtx.SetUser(req.Context(), tc.User))
			}

			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Fatalf("res.Code: expected '%d', got '%d' (body: %s)", e, g, res.Body.String())
			}

			if tc.ExpectedStatus != http.StatusOK {
				var errRes ErrorResponse
				if err := json.Unmarshal(res.Body.Bytes(), &errRes); err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}

				if e, g := tc.ExpectedKind, errRes.Error.Kind; e != g {
					t.Errorf("errRes.Error.Kind: expected '%s', got '%s'", e, g)
				}

				return
			}

			var shareRes ResolveShareResponse
			if err := json.Unmarshal(res.Body.Bytes(), &shareRes); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := "photo", shareRes.Share.Kind; e != g {
				t.Errorf("shareRes.Share.Kind: expected '%s', got '%s'", e, g)
			}

			if shareRes.Content == nil || shareRes.Content.Photo == nil {
				t.Fatal("shareRes.Content.Photo should not be nil")
			}

			if e, g := "sunset.jpg", shareRes.Content.Photo.Filename; e != g {
				t.Errorf("shareRes.Content.Photo.Filename: expected '%s', got '%s'", e, g)
			}
		})
	}
}
