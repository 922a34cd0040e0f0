package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/lumapix/lumapix/internal/adapter/memory"
	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/lumapix/lumapix/internal/core/service"
	httpCtx "github.com/lumapix/lumapix/internal/http/context"
	"github.com/pkg/errors"
)

type handlerFixture struct {
	handler *Handler
	shares  *memory.ShareStore
	library *memory.LibraryStore
	users   *memory.UserStore
	mailer  *memory.Mailer

	owner model.PersistedUser
	other model.PersistedUser
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctx := context.Background()

	f := &handlerFixture{
		shares:  memory.NewShareStore(),
		library: memory.NewLibraryStore(),
		users:   memory.NewUserStore(),
		mailer:  memory.NewMailer(),
	}

	owner, err := f.users.CreateUser(ctx, model.NewUser("alice", "alice@example.net"), []byte("-"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	other, err := f.users.CreateUser(ctx, model.NewUser("bob", "bob@example.net"), []byte("-"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	f.owner = owner
	f.other = other

	baseURL, err := url.Parse("http://photos.example.net")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	manager := service.NewShareManager(f.shares, f.users, service.NewContentResolver(f.library), service.NewTokenIssuer(), f.mailer, baseURL)

	f.handler = NewHandler(manager, f.shares, f.library, f.users)

	return f
}

func (f *handlerFixture) do(t *testing.T, user model.User, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if user != nil {
		req = req.WithContext(httpCtx.SetUser(req.Context(), user))
	}

	res := httptest.NewRecorder()

	f.handler.ServeHTTP(res, req)

	return res
}

func TestCreateSharesRequiresAuthentication(t *testing.T) {
	f := newHandlerFixture(t)

	res := f.do(t, nil, http.MethodPost, "/share", `{"items":[],"isPublic":true}`)

	if e, g := http.StatusUnauthorized, res.Code; e != g {
		t.Errorf("res.Code: expected '%d', got '%d'", e, g)
	}
}

func TestCreateSharesPublic(t *testing.T) {
	ctx := context.Background()
	f := newHandlerFixture(t)

	photo, err := f.library.SavePhoto(ctx, model.NewPhoto(f.owner.ID(), "sunset.jpg", "image/jpeg", 2048), port.PhotoAssociations{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	body := `{"items":[{"type":"photo","id":"` + string(photo.ID()) + `"}],"isPublic":true}`

	res := f.do(t, f.owner, http.MethodPost, "/share", body)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%d', got '%d' (body: %s)", e, g, res.Body.String())
	}

	var shareRes CreateSharesResponse
	if err := json.Unmarshal(res.Body.Bytes(), &shareRes); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(shareRes.AllShareLinks); e != g {
		t.Fatalf("len(shareRes.AllShareLinks): expected '%d', got '%d'", e, g)
	}

	if e, g := shareRes.AllShareLinks[0], shareRes.ShareLink; e != g {
		t.Errorf("shareRes.ShareLink: expected '%s', got '%s'", e, g)
	}

	if !strings.HasPrefix(shareRes.ShareLink, "http://photos.example.net/share/") {
		t.Errorf("unexpected share link '%s'", shareRes.ShareLink)
	}

	grant, err := f.shares.FindShareGrantByToken(ctx, shareRes.Shares[0].Token)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := f.owner.ID(), grant.OwnerID(); e != g {
		t.Errorf("grant.OwnerID(): expected '%s', got '%s'", e, g)
	}
}

func TestCreateSharesErrors(t *testing.T) {
	ctx := context.Background()
	f := newHandlerFixture(t)

	theirs, err := f.library.SavePhoto(ctx, model.NewPhoto(f.other.ID(), "theirs.jpg", "image/jpeg", 1024), port.PhotoAssociations{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	type testCase struct {
		Name           string
		Body           string
		ExpectedStatus int
		ExpectedKind   string
	}

	testCases := []testCase{
		{
			Name:           "empty selection",
			Body:           `{"items":[],"isPublic":true}`,
			ExpectedStatus: http.StatusBadRequest,
			ExpectedKind:   "empty_selection",
		},
		{
			Name:           "invalid content kind",
			Body:           `{"items":[{"type":"video","id":"whatever"}],"isPublic":true}`,
			ExpectedStatus: http.StatusBadRequest,
			ExpectedKind:   "invalid_content_kind",
		},
		{
			Name:           "item owned by someone else",
			Body:           `{"items":[{"type":"photo","id":"` + string(theirs.ID()) + `"}],"isPublic":true}`,
			ExpectedStatus: http.StatusForbidden,
			ExpectedKind:   "not_authorized",
		},
		{
			Name:           "unknown recipient",
			Body:           `{"items":[{"type":"photo","id":"whatever"}],"recipientEmail":"nobody@example.net"}`,
			ExpectedStatus: http.StatusNotFound,
			ExpectedKind:   "recipient_not_found",
		},
		{
			Name:           "missing recipient for private share",
			Body:           `{"items":[{"type":"photo","id":"whatever"}]}`,
			ExpectedStatus: http.StatusBadRequest,
			ExpectedKind:   "invalid_request",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			res := f.do(t, f.owner, http.MethodPost, "/share", tc.Body)

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Fatalf("res.Code: expected '%d', got '%d' (body: %s)", e, g, res.Body.String())
			}

			var errRes ErrorResponse
			if err := json.Unmarshal(res.Body.Bytes(), &errRes); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedKind, errRes.Error.Kind; e != g {
				t.Errorf("errRes.Error.Kind: expected '%s', got '%s'", e, g)
			}
		})
	}
}

func TestCreateSharesNotificationFailure(t *testing.T) {
	ctx := context.Background()
	f := newHandlerFixture(t)

	f.mailer.FailWith(errors.New("smtp unavailable"))

	photo, err := f.library.SavePhoto(ctx, model.NewPhoto(f.owner.ID(), "sunset.jpg", "image/jpeg", 2048), port.PhotoAssociations{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	body := `{"items":[{"type":"photo","id":"` + string(photo.ID()) + `"}],"recipientEmail":"bob@example.net"}`

	res := f.do(t, f.owner, http.MethodPost, "/share", body)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%d', got '%d' (body: %s)", e, g, res.Body.String())
	}

	var shareRes CreateSharesResponse
	if err := json.Unmarshal(res.Body.Bytes(), &shareRes); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if shareRes.Warning == nil {
		t.Fatal("shareRes.Warning should not be nil")
	}

	if e, g := "notification_failed", shareRes.Warning.Kind; e != g {
		t.Errorf("shareRes.Warning.Kind: expected '%s', got '%s'", e, g)
	}

	if e, g := 1, len(shareRes.AllShareLinks); e != g {
		t.Errorf("len(shareRes.AllShareLinks): expected '%d', got '%d'", e, g)
	}
}

func TestListAndDeleteShares(t *testing.T) {
	ctx := context.Background()
	f := newHandlerFixture(t)

	photo, err := f.library.SavePhoto(ctx, model.NewPhoto(f.owner.ID(), "sunset.jpg", "image/jpeg", 2048), port.PhotoAssociations{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	photoRef := model.ContentRef{Kind: model.ContentKindPhoto, ID: string(photo.ID())}

	grant, err := f.shares.CreateShareGrant(ctx, model.NewShareGrant(f.owner.ID(), photoRef, "token-1", model.AsPublicShare()))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	res := f.do(t, f.owner, http.MethodGet, "/share", "")

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%d', got '%d'", e, g)
	}

	var listRes ListSharesResponse
	if err := json.Unmarshal(res.Body.Bytes(), &listRes); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(listRes.Shares); e != g {
		t.Fatalf("len(listRes.Shares): expected '%d', got '%d'", e, g)
	}

	// Another user may not delete someone else's grant.
	res = f.do(t, f.other, http.MethodDelete, "/share/"+string(grant.ID()), "")

	if e, g := http.StatusForbidden, res.Code; e != g {
		t.Errorf("res.Code: expected '%d', got '%d'", e, g)
	}

	res = f.do(t, f.owner, http.MethodDelete, "/share/"+string(grant.ID()), "")

	if e, g := http.StatusNoContent, res.Code; e != g {
		t.Errorf("res.Code: expected '%d', got '%d'", e, g)
	}

	if _, err := f.shares.FindShareGrantByToken(ctx, "token-1"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected ErrNotFound, got '%v'", err)
	}
}
