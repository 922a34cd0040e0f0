package service

import (
	"context"

	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/pkg/errors"
)

// ContentResolver maps a polymorphic content reference to the actual
// content aggregate, one case per kind.
type ContentResolver struct {
	library port.LibraryStore
}

// Resolve fetches the aggregate behind the given reference. The scope is
// the grant owner: tag and category feeds only include photos authored
// by that user. Returns port.ErrNotFound if the id does not exist in the
// kind's repository.
func (r *ContentResolver) Resolve(ctx context.Context, ref model.ContentRef, scope model.UserID) (model.ContentPayload, error) {
	switch ref.Kind {
	case model.ContentKindPhoto:
		payload, err := r.library.GetPhotoAggregate(ctx, model.PhotoID(ref.ID))
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return payload, nil

	case model.ContentKindAlbum:
		payload, err := r.library.GetAlbumAggregate(ctx, model.AlbumID(ref.ID))
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return payload, nil

	case model.ContentKindTag:
		payload, err := r.library.GetTagAggregate(ctx, model.TagID(ref.ID), scope)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return payload, nil

	case model.ContentKindCategory:
		payload, err := r.library.GetCategoryAggregate(ctx, model.CategoryID(ref.ID), scope)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return payload, nil

	default:
		return nil, errors.Wrapf(ErrInvalidContentKind, "unexpected content kind '%s'", ref.Kind)
	}
}

// ResolveOwned checks that the referenced content exists and, for
// ownership-checked kinds, that it belongs to the given owner. Tags and
// categories are ownership-exempt: existence is enough.
func (r *ContentResolver) ResolveOwned(ctx context.Context, ref model.ContentRef, ownerID model.UserID) error {
	switch ref.Kind {
	case model.ContentKindPhoto:
		photo, err := r.library.GetPhotoByID(ctx, model.PhotoID(ref.ID))
		if err != nil {
			return errors.WithStack(err)
		}

		if photo.OwnerID() != ownerID {
			return errors.WithStack(port.ErrNotAuthorized)
		}

		return nil

	case model.ContentKindAlbum:
		album, err := r.library.GetAlbumByID(ctx, model.AlbumID(ref.ID))
		if err != nil {
			return errors.WithStack(err)
		}

		if album.OwnerID() != ownerID {
			return errors.WithStack(port.ErrNotAuthorized)
		}

		return nil

	case model.ContentKindTag:
		if _, err := r.library.GetTagByID(ctx, model.TagID(ref.ID)); err != nil {
			return errors.WithStack(err)
		}

		return nil

	case model.ContentKindCategory:
		if _, err := r.library.GetCategoryByID(ctx, model.CategoryID(ref.ID)); err != nil {
			return errors.WithStack(err)
		}

		return nil

	default:
		return errors.Wrapf(ErrInvalidContentKind, "unexpected content kind '%s'", ref.Kind)
	}
}

func NewContentResolver(library port.LibraryStore) *ContentResolver {
	return &ContentResolver{
		library: library,
	}
}
