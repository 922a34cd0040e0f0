package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestShareStoreDuplicateToken(t *testing.T) {
	ctx := context.Background()
	store := NewShareStore()

	ownerID := model.NewUserID()
	content := model.ContentRef{Kind: model.ContentKindPhoto, ID: "photo-1"}

	_, err := store.CreateShareGrant(ctx, model.NewShareGrant(ownerID, content, "token-1"))
	require.NoError(t, err)

	_, err = store.CreateShareGrant(ctx, model.NewShareGrant(ownerID, content, "token-1"))
	require.ErrorIs(t, err, port.ErrDuplicateToken)
}

func TestShareStoreQueryPagination(t *testing.T) {
	ctx := context.Background()
	store := NewShareStore()

	aliceID := model.NewUserID()
	bobID := model.NewUserID()

	for i := 0; i < 5; i++ {
		token := fmt.Sprintf("alice-token-%d", i)
		_, err := store.CreateShareGrant(ctx, model.NewShareGrant(aliceID, model.ContentRef{Kind: model.ContentKindPhoto, ID: token}, token))
		require.NoError(t, err)
	}

	_, err := store.CreateShareGrant(ctx, model.NewShareGrant(bobID, model.ContentRef{Kind: model.ContentKindPhoto, ID: "bob"}, "bob-token"))
	require.NoError(t, err)

	page := 1
	limit := 2

	grants, err := store.QueryShareGrants(ctx, port.QueryShareGrantsOptions{
		OwnerID: &aliceID,
		Page:    &page,
		Limit:   &limit,
	})
	require.NoError(t, err)
	require.Len(t, grants, 2)

	// Insertion order is preserved, so the second page starts at the
	// third grant.
	require.Equal(t, "alice-token-2", grants[0].Token())
	require.Equal(t, "alice-token-3", grants[1].Token())

	grants, err = store.QueryShareGrants(ctx, port.QueryShareGrantsOptions{OwnerID: &bobID})
	require.NoError(t, err)
	require.Len(t, grants, 1)

	err = store.DeleteShareGrant(ctx, grants[0].ID())
	require.NoError(t, err)

	_, err = store.FindShareGrantByToken(ctx, "bob-token")
	require.True(t, errors.Is(err, port.ErrNotFound))
}
