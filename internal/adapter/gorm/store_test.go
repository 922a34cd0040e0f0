package gorm

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.sqlite")

	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB, err := db.DB()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB.SetMaxOpenConns(1)

	return NewStore(db)
}

func TestShareStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	ownerID := model.NewUserID()
	content := model.ContentRef{Kind: model.ContentKindPhoto, ID: "photo-1"}

	created, err := store.CreateShareGrant(ctx, model.NewShareGrant(ownerID, content, "token-1", model.AsPublicShare()))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	found, err := store.FindShareGrantByToken(ctx, "token-1")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := created.ID(), found.ID(); e != g {
		t.Errorf("found.ID(): expected '%s', got '%s'", e, g)
	}

	if e, g := content, found.Content(); e != g {
		t.Errorf("found.Content(): expected '%v', got '%v'", e, g)
	}

	if !found.IsPublic() {
		t.Error("found.IsPublic() should be true")
	}

	if found.CreatedAt().IsZero() {
		t.Error("found.CreatedAt() should not be zero")
	}

	if _, err := store.FindShareGrantByToken(ctx, "no-such-token"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected ErrNotFound, got '%v'", err)
	}
}

func TestShareStoreDuplicateToken(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	ownerID := model.NewUserID()
	content := model.ContentRef{Kind: model.ContentKindAlbum, ID: "album-1"}

	if _, err := store.CreateShareGrant(ctx, model.NewShareGrant(ownerID, content, "token-1")); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	_, err := store.CreateShareGrant(ctx, model.NewShareGrant(ownerID, content, "token-1"))
	if !errors.Is(err, port.ErrDuplicateToken) {
		t.Errorf("err: expected ErrDuplicateToken, got '%v'", err)
	}
}

func TestShareStoreQueryAndDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	aliceID := model.NewUserID()
	bobID := model.NewUserID()

	tokens := []string{"token-1", "token-2", "token-3"}
	for _, token := range tokens {
		if _, err := store.CreateShareGrant(ctx, model.NewShareGrant(aliceID, model.ContentRef{Kind: model.ContentKindPhoto, ID: "photo-" + token}, token)); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	if _, err := store.CreateShareGrant(ctx, model.NewShareGrant(bobID, model.ContentRef{Kind: model.ContentKindPhoto, ID: "photo-bob"}, "token-bob")); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	grants, err := store.QueryShareGrants(ctx, port.QueryShareGrantsOptions{OwnerID: &aliceID})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 3, len(grants); e != g {
		t.Fatalf("len(grants): expected '%d', got '%d'", e, g)
	}

	if err := store.DeleteShareGrant(ctx, grants[0].ID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	grants, err = store.QueryShareGrants(ctx, port.QueryShareGrantsOptions{OwnerID: &aliceID})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(grants); e != g {
		t.Errorf("len(grants): expected '%d', got '%d'", e, g)
	}

	if err := store.DeleteShareGrant(ctx, model.ShareID("missing")); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected ErrNotFound, got '%v'", err)
	}
}

func TestUserStoreAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	created, err := store.CreateUser(ctx, model.NewUser("alice", "alice@example.net"), passwordHash)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.CreateUser(ctx, model.NewUser("alice", "other@example.net"), passwordHash); !errors.Is(err, port.ErrAlreadyExists) {
		t.Errorf("err: expected ErrAlreadyExists, got '%v'", err)
	}

	user, err := store.Authenticate(ctx, "alice@example.net", "s3cret")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := created.ID(), user.ID(); e != g {
		t.Errorf("user.ID(): expected '%s', got '%s'", e, g)
	}

	if _, err := store.Authenticate(ctx, "alice@example.net", "wrong"); !errors.Is(err, port.ErrNotAuthorized) {
		t.Errorf("err: expected ErrNotAuthorized, got '%v'", err)
	}

	if _, err := store.Authenticate(ctx, "nobody@example.net", "s3cret"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected ErrNotFound, got '%v'", err)
	}
}

func TestLibraryStorePhotoAssociations(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	aliceID := model.NewUserID()
	bobID := model.NewUserID()

	album, err := store.SaveAlbum(ctx, model.NewAlbum(aliceID, "Summer", ""))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	tag, err := store.FindOrCreateTag(ctx, "landscape")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// FindOrCreateTag must be idempotent on the name.
	sameTag, err := store.FindOrCreateTag(ctx, "landscape")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := tag.ID(), sameTag.ID(); e != g {
		t.Errorf("sameTag.ID(): expected '%s', got '%s'", e, g)
	}

	alicePhoto, err := store.SavePhoto(ctx, model.NewPhoto(aliceID, "beach.jpg", "image/jpeg", 2048), port.PhotoAssociations{
		Albums: []model.AlbumID{album.ID()},
		Tags:   []model.TagID{tag.ID()},
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.SavePhoto(ctx, model.NewPhoto(bobID, "mountain.jpg", "image/jpeg", 4096), port.PhotoAssociations{
		Tags: []model.TagID{tag.ID()},
	}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	payload, err := store.GetPhotoAggregate(ctx, alicePhoto.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(payload.Albums); e != g {
		t.Errorf("len(payload.Albums): expected '%d', got '%d'", e, g)
	}

	if e, g := 1, len(payload.Tags); e != g {
		t.Errorf("len(payload.Tags): expected '%d', got '%d'", e, g)
	}

	tagPayload, err := store.GetTagAggregate(ctx, tag.ID(), aliceID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(tagPayload.Photos); e != g {
		t.Fatalf("len(tagPayload.Photos): expected '%d', got '%d'", e, g)
	}

	if e, g := alicePhoto.ID(), tagPayload.Photos[0].ID(); e != g {
		t.Errorf("tagPayload.Photos[0].ID(): expected '%s', got '%s'", e, g)
	}
}
