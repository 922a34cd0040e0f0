package service

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/lumapix/lumapix/internal/adapter/memory"
	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/pkg/errors"
)

type shareManagerFixture struct {
	shares  *memory.ShareStore
	library *memory.LibraryStore
	users   *memory.UserStore
	mailer  *memory.Mailer
	manager *ShareManager

	owner model.PersistedUser
	other model.PersistedUser
}

func newShareManagerFixture(t *testing.T, funcs ...ShareManagerOptionFunc) *shareManagerFixture {
	t.Helper()

	ctx := context.Background()

	f := &shareManagerFixture{
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

	f.manager = NewShareManager(f.shares, f.users, NewContentResolver(f.library), NewTokenIssuer(), f.mailer, baseURL, funcs...)

	return f
}

func (f *shareManagerFixture) createPhoto(t *testing.T, ownerID model.UserID, filename string) model.PersistedPhoto {
	t.Helper()

	photo, err := f.library.SavePhoto(context.Background(), model.NewPhoto(ownerID, filename, "image/jpeg", 1024), port.PhotoAssociations{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return photo
}

func TestShareManagerEmptySelection(t *testing.T) {
	f := newShareManagerFixture(t)

	result, err := f.manager.CreateShares(context.Background(), f.owner.ID(), []model.ContentRef{}, CreateSharesOptions{Public: true})
	if !errors.Is(err, ErrEmptySelection) {
		t.Errorf("err: expected ErrEmptySelection, got '%v'", err)
	}

	if e, g := 0, len(result.Created); e != g {
		t.Errorf("len(result.Created): expected '%d', got '%d'", e, g)
	}
}

func TestShareManagerInvalidContentKind(t *testing.T) {
	f := newShareManagerFixture(t)

	items := []model.ContentRef{
		{Kind: model.ContentKind("video"), ID: "whatever"},
	}

	result, err := f.manager.CreateShares(context.Background(), f.owner.ID(), items, CreateSharesOptions{Public: true})
	if !errors.Is(err, ErrInvalidContentKind) {
		t.Errorf("err: expected ErrInvalidContentKind, got '%v'", err)
	}

	if e, g := 0, len(result.Created); e != g {
		t.Errorf("len(result.Created): expected '%d', got '%d'", e, g)
	}
}

func TestShareManagerRecipientNotFound(t *testing.T) {
	f := newShareManagerFixture(t)

	photo := f.createPhoto(t, f.owner.ID(), "sunset.jpg")

	items := []model.ContentRef{
		{Kind: model.ContentKindPhoto, ID: string(photo.ID())},
	}

	result, err := f.manager.CreateShares(context.Background(), f.owner.ID(), items, CreateSharesOptions{RecipientEmail: "nobody@example.net"})
	if !errors.Is(err, ErrRecipientNotFound) {
		t.Errorf("err: expected ErrRecipientNotFound, got '%v'", err)
	}

	if e, g := 0, len(result.Created); e != g {
		t.Errorf("len(result.Created): expected '%d', got '%d'", e, g)
	}
}

func TestShareManagerUnauthorizedItemKeepsEarlierGrants(t *testing.T) {
	ctx := context.Background()
	f := newShareManagerFixture(t)

	mine := f.createPhoto(t, f.owner.ID(), "mine.jpg")
	theirs := f.createPhoto(t, f.other.ID(), "theirs.jpg")

	items := []model.ContentRef{
		{Kind: model.ContentKindPhoto, ID: string(mine.ID())},
		{Kind: model.ContentKindPhoto, ID: string(theirs.ID())},
	}

	result, err := f.manager.CreateShares(ctx, f.owner.ID(), items, CreateSharesOptions{Public: true})
	if !errors.Is(err, ErrItemNotAuthorized) {
		t.Errorf("err: expected ErrItemNotAuthorized, got '%v'", err)
	}

	if e, g := 1, len(result.Created); e != g {
		t.Fatalf("len(result.Created): expected '%d', got '%d'", e, g)
	}

	// The first grant is not rolled back and must stay resolvable.
	grant, err := f.shares.FindShareGrantByToken(ctx, result.Created[0].Token)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := string(mine.ID()), grant.Content().ID; e != g {
		t.Errorf("grant.Content().ID: expected '%s', got '%s'", e, g)
	}
}

func TestShareManagerUnownedTaxonomyIsSharable(t *testing.T) {
	ctx := context.Background()
	f := newShareManagerFixture(t)

	tag, err := f.library.FindOrCreateTag(ctx, "landscape")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	items := []model.ContentRef{
		{Kind: model.ContentKindTag, ID: string(tag.ID())},
	}

	// Tags carry no owner, so any user may share them.
	result, err := f.manager.CreateShares(ctx, f.other.ID(), items, CreateSharesOptions{Public: true})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(result.Created); e != g {
		t.Errorf("len(result.Created): expected '%d', got '%d'", e, g)
	}
}

func TestShareManagerPublicBatch(t *testing.T) {
	ctx := context.Background()
	f := newShareManagerFixture(t)

	first := f.createPhoto(t, f.owner.ID(), "first.jpg")
	second := f.createPhoto(t, f.owner.ID(), "second.jpg")

	items := []model.ContentRef{
		{Kind: model.ContentKindPhoto, ID: string(first.ID())},
		{Kind: model.ContentKindPhoto, ID: string(second.ID())},
	}

	result, err := f.manager.CreateShares(ctx, f.owner.ID(), items, CreateSharesOptions{Public: true})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(result.Created); e != g {
		t.Fatalf("len(result.Created): expected '%d', got '%d'", e, g)
	}

	for _, created := range result.Created {
		if e, g := "http://photos.example.net/share/"+created.Token, created.Link; e != g {
			t.Errorf("created.Link: expected '%s', got '%s'", e, g)
		}

		if !created.Grant.IsPublic() {
			t.Error("created.Grant.IsPublic() should be true")
		}
	}

	if e, g := 0, len(f.mailer.Sent()); e != g {
		t.Errorf("len(f.mailer.Sent()): expected '%d', got '%d'", e, g)
	}
}

func TestShareManagerRecipientNotification(t *testing.T) {
	ctx := context.Background()
	f := newShareManagerFixture(t)

	photo := f.createPhoto(t, f.owner.ID(), "sunset.jpg")

	items := []model.ContentRef{
		{Kind: model.ContentKindPhoto, ID: string(photo.ID())},
	}

	result, err := f.manager.CreateShares(ctx, f.owner.ID(), items, CreateSharesOptions{RecipientEmail: "bob@example.net"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if result.Recipient == nil {
		t.Fatal("result.Recipient should not be nil")
	}

	if e, g := f.other.ID(), result.Recipient.ID(); e != g {
		t.Errorf("result.Recipient.ID(): expected '%s', got '%s'", e, g)
	}

	sent := f.mailer.Sent()
	if e, g := 1, len(sent); e != g {
		t.Fatalf("len(sent): expected '%d', got '%d'", e, g)
	}

	if e, g := "bob@example.net", sent[0].To; e != g {
		t.Errorf("sent[0].To: expected '%s', got '%s'", e, g)
	}

	for _, created := range result.Created {
		if !strings.Contains(sent[0].Body, created.Link) {
			t.Errorf("mail body should contain link '%s'", created.Link)
		}
	}

	grant := result.Created[0].Grant
	if recipientID := grant.RecipientID(); recipientID == nil || *recipientID != f.other.ID() {
		t.Errorf("grant.RecipientID(): expected '%s', got '%v'", f.other.ID(), recipientID)
	}
}

func TestShareManagerNotificationFailureKeepsGrants(t *testing.T) {
	ctx := context.Background()
	f := newShareManagerFixture(t)

	f.mailer.FailWith(errors.New("smtp unavailable"))

	photo := f.createPhoto(t, f.owner.ID(), "sunset.jpg")

	items := []model.ContentRef{
		{Kind: model.ContentKindPhoto, ID: string(photo.ID())},
	}

	result, err := f.manager.CreateShares(ctx, f.owner.ID(), items, CreateSharesOptions{RecipientEmail: "bob@example.net"})
	if !errors.Is(err, ErrNotificationFailed) {
		t.Errorf("err: expected ErrNotificationFailed, got '%v'", err)
	}

	if e, g := 1, len(result.Created); e != g {
		t.Fatalf("len(result.Created): expected '%d', got '%d'", e, g)
	}

	if _, err := f.shares.FindShareGrantByToken(ctx, result.Created[0].Token); err != nil {
		t.Errorf("grant should stay resolvable, got '%v'", err)
	}
}

func TestShareManagerTokenCollisionRetry(t *testing.T) {
	ctx := context.Background()

	tokens := []string{"taken", "fresh"}
	generate := func() (string, error) {
		token := tokens[0]
		if len(tokens) > 1 {
			tokens = tokens[1:]
		}
		return token, nil
	}

	f := newShareManagerFixture(t)

	baseURL, err := url.Parse("http://photos.example.net")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	manager := NewShareManager(f.shares, f.users, NewContentResolver(f.library), NewTokenIssuer(WithTokenGenerator(generate)), f.mailer, baseURL)

	photo := f.createPhoto(t, f.owner.ID(), "sunset.jpg")

	if _, err := f.shares.CreateShareGrant(ctx, model.NewShareGrant(f.other.ID(), model.ContentRef{Kind: model.ContentKindPhoto, ID: "other"}, "taken", model.AsPublicShare())); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	items := []model.ContentRef{
		{Kind: model.ContentKindPhoto, ID: string(photo.ID())},
	}

	result, err := manager.CreateShares(ctx, f.owner.ID(), items, CreateSharesOptions{Public: true})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "fresh", result.Created[0].Token; e != g {
		t.Errorf("result.Created[0].Token: expected '%s', got '%s'", e, g)
	}
}

func TestShareManagerTokenRetriesFloor(t *testing.T) {
	ctx := context.Background()

	// A retry count of zero still yields one issuance attempt per grant.
	f := newShareManagerFixture(t, WithTokenRetries(0))

	photo := f.createPhoto(t, f.owner.ID(), "sunset.jpg")

	items := []model.ContentRef{
		{Kind: model.ContentKindPhoto, ID: string(photo.ID())},
	}

	result, err := f.manager.CreateShares(ctx, f.owner.ID(), items, CreateSharesOptions{Public: true})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(result.Created); e != g {
		t.Fatalf("len(result.Created): expected '%d', got '%d'", e, g)
	}

	if result.Created[0].Grant == nil {
		t.Fatal("result.Created[0].Grant should not be nil")
	}

	if result.Created[0].Token == "" {
		t.Error("result.Created[0].Token should not be empty")
	}
}

func TestShareManagerTokenCollisionExhaustion(t *testing.T) {
	ctx := context.Background()

	generate := func() (string, error) {
		return "taken", nil
	}

	f := newShareManagerFixture(t)

	baseURL, err := url.Parse("http://photos.example.net")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	manager := NewShareManager(f.shares, f.users, NewContentResolver(f.library), NewTokenIssuer(WithTokenGenerator(generate)), f.mailer, baseURL, WithTokenRetries(2))

	photo := f.createPhoto(t, f.owner.ID(), "sunset.jpg")

	if _, err := f.shares.CreateShareGrant(ctx, model.NewShareGrant(f.other.ID(), model.ContentRef{Kind: model.ContentKindPhoto, ID: "other"}, "taken", model.AsPublicShare())); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	items := []model.ContentRef{
		{Kind: model.ContentKindPhoto, ID: string(photo.ID())},
	}

	result, err := manager.CreateShares(ctx, f.owner.ID(), items, CreateSharesOptions{Public: true})
	if !errors.Is(err, port.ErrDuplicateToken) {
		t.Errorf("err: expected ErrDuplicateToken, got '%v'", err)
	}

	if e, g := 0, len(result.Created); e != g {
		t.Errorf("len(result.Created): expected '%d', got '%d'", e, g)
	}
}
