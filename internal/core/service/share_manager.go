package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/pkg/errors"
)

const defaultTokenRetries = 3

// CreateSharesOptions carries the sharing parameters common to every
// item of a batch.
type CreateSharesOptions struct {
	// Public grants access to any bearer of the token. When false, a
	// recipient email is required.
	Public         bool
	RecipientEmail string
	ExpiresAt      *time.Time
}

type CreatedShare struct {
	Content model.ContentRef
	Token   string
	Link    string
	Grant   model.PersistedShareGrant
}

// BatchResult is the aggregate outcome of one share-creation request.
// Created always reflects the grants persisted so far, including when
// the call returns an error: the batch is best-effort and grants are
// never rolled back once persisted.
type BatchResult struct {
	Recipient model.User
	Created   []CreatedShare
}

// ShareManager creates share grants from a user-initiated sharing
// action: it validates each item, mints one grant per item, and reports
// a single aggregate outcome.
type ShareManager struct {
	shares       port.ShareStore
	users        port.UserStore
	resolver     *ContentResolver
	issuer       *TokenIssuer
	mailer       port.Mailer
	baseURL      *url.URL
	tokenRetries int
}

// CreateShares validates and persists one grant per item, sequentially
// and in input order. Validation failures abort the batch on the first
// offending item; grants created for earlier items are kept and returned
// alongside the error. On full success with a named recipient, a single
// notification containing all links is dispatched; a dispatch failure
// leaves the grants valid and surfaces ErrNotificationFailed.
func (m *ShareManager) CreateShares(ctx context.Context, ownerID model.UserID, items []model.ContentRef, opts CreateSharesOptions) (*BatchResult, error) {
	result := &BatchResult{
		Created: []CreatedShare{},
	}

	if !opts.Public {
		recipient, err := m.users.FindUserByEmail(ctx, opts.RecipientEmail)
		if err != nil {
			if errors.Is(err, port.ErrNotFound) {
				return result, errors.Wrapf(ErrRecipientNotFound, "no user with email '%s'", opts.RecipientEmail)
			}

			return result, errors.WithStack(err)
		}

		result.Recipient = recipient
	}

	if len(items) == 0 {
		return result, errors.WithStack(ErrEmptySelection)
	}

	for _, item := range items {
		if !item.Kind.Valid() {
			return result, errors.Wrapf(ErrInvalidContentKind, "content kind '%s'", item.Kind)
		}

		if err := m.resolver.ResolveOwned(ctx, item, ownerID); err != nil {
			if errors.Is(err, port.ErrNotFound) || errors.Is(err, port.ErrNotAuthorized) {
				return result, errors.Wrapf(ErrItemNotAuthorized, "item '%s'", item)
			}

			return result, errors.WithStack(err)
		}

		grant, err := m.createGrant(ctx, ownerID, item, opts, result.Recipient)
		if err != nil {
			return result, errors.WithStack(err)
		}

		result.Created = append(result.Created, CreatedShare{
			Content: item,
			Token:   grant.Token(),
			Link:    m.ShareLink(grant.Token()),
			Grant:   grant,
		})
	}

	if result.Recipient != nil {
		if err := m.notify(ctx, result); err != nil {
			slog.ErrorContext(ctx, "could not send share notification", slog.Any("error", errors.WithStack(err)))
			return result, errors.WithStack(ErrNotificationFailed)
		}
	}

	return result, nil
}

func (m *ShareManager) createGrant(ctx context.Context, ownerID model.UserID, item model.ContentRef, opts CreateSharesOptions, recipient model.User) (model.PersistedShareGrant, error) {
	var lastErr error

	for attempt := 0; attempt < m.tokenRetries; attempt++ {
		token, err := m.issuer.Issue()
		if err != nil {
			return nil, errors.WithStack(err)
		}

		grantOpts := []model.ShareGrantOptionFunc{}
		if opts.Public {
			grantOpts = append(grantOpts, model.AsPublicShare())
		}
		if recipient != nil {
			grantOpts = append(grantOpts, model.WithShareRecipient(recipient.ID()))
		}
		if opts.ExpiresAt != nil {
			grantOpts = append(grantOpts, model.WithShareExpiration(*opts.ExpiresAt))
		}

		grant, err := m.shares.CreateShareGrant(ctx, model.NewShareGrant(ownerID, item, token, grantOpts...))
		if err != nil {
			if errors.Is(err, port.ErrDuplicateToken) {
				lastErr = err
				continue
			}

			return nil, errors.WithStack(err)
		}

		return grant, nil
	}

	return nil, errors.Wrapf(lastErr, "token collision persisted after %d attempts", m.tokenRetries)
}

func (m *ShareManager) notify(ctx context.Context, result *BatchResult) error {
	var body strings.Builder

	fmt.Fprintf(&body, "Some content has been shared with you on Lumapix.\r\n\r\n")
	for _, created := range result.Created {
		fmt.Fprintf(&body, "- %s\r\n", created.Link)
	}

	subject := fmt.Sprintf("Content shared with you (%d items)", len(result.Created))

	if err := m.mailer.SendMail(ctx, result.Recipient.Email(), subject, body.String()); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// ShareLink builds the public URL embedding the given token.
func (m *ShareManager) ShareLink(token string) string {
	return m.baseURL.JoinPath("share", token).String()
}

type ShareManagerOptionFunc func(m *ShareManager)

// WithTokenRetries sets how many token issuance attempts are made per
// grant. Values below 1 are clamped to a single attempt so the grant
// loop always runs.
func WithTokenRetries(retries int) ShareManagerOptionFunc {
	return func(m *ShareManager) {
		if retries < 1 {
			retries = 1
		}

		m.tokenRetries = retries
	}
}

func NewShareManager(shares port.ShareStore, users port.UserStore, resolver *ContentResolver, issuer *TokenIssuer, mailer port.Mailer, baseURL *url.URL, funcs ...ShareManagerOptionFunc) *ShareManager {
	manager := &ShareManager{
		shares:       shares,
		users:        users,
		resolver:     resolver,
		issuer:       issuer,
		mailer:       mailer,
		baseURL:      baseURL,
		tokenRetries: defaultTokenRetries,
	}
	for _, fn := range funcs {
		fn(manager)
	}
	return manager
}
