package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/lumapix/lumapix/internal/core/service"
	httpCtx "github.com/lumapix/lumapix/internal/http/context"
	"github.com/lumapix/lumapix/internal/metrics"
	"github.com/pkg/errors"
)

type CreateSharesRequest struct {
	Items          []ContentItem `json:"items"`
	Public         bool          `json:"isPublic"`
	RecipientEmail string        `json:"recipientEmail"`
	ExpiresAt      *time.Time    `json:"expiresAt"`
}

type ContentItem struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type CreateSharesResponse struct {
	ShareLink     string        `json:"shareLink"`
	AllShareLinks []string      `json:"allShareLinks"`
	Shares        []ShareHeader `json:"shares"`
	Warning       *ErrorObject  `json:"warning,omitempty"`
}

type ShareHeader struct {
	ID        string     `json:"id"`
	Token     string     `json:"token"`
	Kind      string     `json:"kind"`
	ContentID string     `json:"contentId"`
	Public    bool       `json:"isPublic"`
	Recipient string     `json:"recipient,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (h *Handler) handleCreateShares(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	var req CreateSharesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "could not parse request body")
		return
	}

	if !req.Public && req.RecipientEmail == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "a recipient email is required for non-public shares")
		return
	}

	items := make([]model.ContentRef, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.ContentRef{
			Kind: model.ContentKind(item.Type),
			ID:   item.ID,
		})
	}

	result, err := h.shareManager.CreateShares(ctx, user.ID(), items, service.CreateSharesOptions{
		Public:         req.Public,
		RecipientEmail: req.RecipientEmail,
		ExpiresAt:      req.ExpiresAt,
	})

	for _, created := range result.Created {
		metrics.ShareGrantsCreated.WithLabelValues(string(created.Content.Kind)).Inc()
	}

	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptySelection):
			writeError(w, r, http.StatusBadRequest, "empty_selection", "no content items to share")

		case errors.Is(err, service.ErrInvalidContentKind):
			writeError(w, r, http.StatusBadRequest, "invalid_content_kind", err.Error())

		case errors.Is(err, service.ErrItemNotAuthorized):
			writeError(w, r, http.StatusForbidden, "not_authorized", err.Error())

		case errors.Is(err, service.ErrRecipientNotFound):
			writeError(w, r, http.StatusNotFound, "recipient_not_found", err.Error())

		case errors.Is(err, service.ErrNotificationFailed):
			// The grants are live even though the notification could not be
			// dispatched; report success with a warning.
			metrics.ShareNotificationFailures.Inc()

			res := newCreateSharesResponse(result)
			res.Warning = &ErrorObject{
				Kind:    "notification_failed",
				Message: "shares were created but the notification email could not be sent",
			}
			writeJSON(w, r, http.StatusOK, res)

		default:
			slog.ErrorContext(ctx, "could not create shares", slog.Any("error", errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, r, http.StatusOK, newCreateSharesResponse(result))
}

func newCreateSharesResponse(result *service.BatchResult) CreateSharesResponse {
	res := CreateSharesResponse{
		AllShareLinks: make([]string, 0, len(result.Created)),
		Shares:        make([]ShareHeader, 0, len(result.Created)),
	}

	for _, created := range result.Created {
		res.AllShareLinks = append(res.AllShareLinks, created.Link)
		res.Shares = append(res.Shares, newShareHeader(created.Grant))
	}

	if len(res.AllShareLinks) > 0 {
		res.ShareLink = res.AllShareLinks[0]
	}

	return res
}

func newShareHeader(grant model.PersistedShareGrant) ShareHeader {
	header := ShareHeader{
		ID:        string(grant.ID()),
		Token:     grant.Token(),
		Kind:      string(grant.Content().Kind),
		ContentID: grant.Content().ID,
		Public:    grant.IsPublic(),
		ExpiresAt: grant.ExpiresAt(),
		CreatedAt: grant.CreatedAt(),
	}

	if recipientID := grant.RecipientID(); recipientID != nil {
		header.Recipient = string(*recipientID)
	}

	return header
}

type ListSharesResponse struct {
	Shares []ShareHeader `json:"shares"`
	Page   int           `json:"page"`
	Limit  int           `json:"limit"`
}

func (h *Handler) handleListShares(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	query := r.URL.Query()
	page := getQueryPage(query, 0)
	limit := getQueryLimit(query, 10)

	ownerID := user.ID()

	grants, err := h.shares.QueryShareGrants(ctx, port.QueryShareGrantsOptions{
		OwnerID: &ownerID,
		Page:    &page,
		Limit:   &limit,
	})
	if err != nil {
		slog.ErrorContext(ctx, "could not query share grants", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := ListSharesResponse{
		Shares: make([]ShareHeader, 0, len(grants)),
		Page:   page,
		Limit:  limit,
	}

	for _, grant := range grants {
		res.Shares = append(res.Shares, newShareHeader(grant))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) handleDeleteShare(w http.ResponseWriter, r *http.Request) {
	shareID := model.ShareID(r.PathValue("shareID"))

	ctx := r.Context()
	user := httpCtx.User(ctx)

	grant, err := h.shares.GetShareGrantByID(ctx, shareID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not get share grant", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if grant.OwnerID() != user.ID() {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	if err := h.shares.DeleteShareGrant(ctx, shareID); err != nil {
		slog.ErrorContext(ctx, "could not delete share grant", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
