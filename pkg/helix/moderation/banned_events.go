package moderation

import (
	"context"
	"time"

	"github.com/streamforge/helixmod/pkg/helix"
)

// GetBannedEventsRequest lists ban and unban events for a channel.
type GetBannedEventsRequest struct {
	// BroadcasterID must match the user ID in the bearer token.
	BroadcasterID string `validate:"required"`
	// UserIDs filters the events to the given users. Maximum: 100,
	// repeated as user_id=1&user_id=2 on the wire.
	UserIDs []string `validate:"max=100"`
	// After is the forward pagination cursor from a prior response.
	After helix.Cursor
	// First caps the number of results per page. Maximum: 100. Zero lets
	// the platform default (20) apply.
	First int `validate:"omitempty,gte=1,lte=100"`
}

// GetBannedEventsOption configures a GetBannedEventsRequest.
type GetBannedEventsOption func(*GetBannedEventsRequest)

// WithBannedEventsUserIDs filters the events to the given user IDs.
func WithBannedEventsUserIDs(ids ...string) GetBannedEventsOption {
	return func(r *GetBannedEventsRequest) {
		r.UserIDs = ids
	}
}

// WithBannedEventsAfter starts the listing at the given cursor.
func WithBannedEventsAfter(c helix.Cursor) GetBannedEventsOption {
	return func(r *GetBannedEventsRequest) {
		r.After = c
	}
}

// WithBannedEventsFirst caps the number of results per page.
func WithBannedEventsFirst(n int) GetBannedEventsOption {
	return func(r *GetBannedEventsRequest) {
		r.First = n
	}
}

// NewGetBannedEventsRequest builds a Get Banned Events request. It fails
// when the broadcaster ID is empty or the page size is out of range.
func NewGetBannedEventsRequest(broadcasterID string, opts ...GetBannedEventsOption) (*GetBannedEventsRequest, error) {
	r := &GetBannedEventsRequest{BroadcasterID: broadcasterID}
	for _, opt := range opts {
		opt(r)
	}
	if err := helix.ValidateRequest(pathBannedEvents, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Path implements helix.Request.
func (r *GetBannedEventsRequest) Path() string { return pathBannedEvents }

// Scopes implements helix.Request.
func (r *GetBannedEventsRequest) Scopes() []helix.Scope { return readScopes }

// Query implements helix.RequestGet.
func (r *GetBannedEventsRequest) Query() helix.Query {
	var q helix.Query
	q.Add("broadcaster_id", r.BroadcasterID)
	for _, id := range r.UserIDs {
		q.Add("user_id", id)
	}
	if r.After != "" {
		q.Add("after", string(r.After))
	}
	if r.First > 0 {
		q.AddInt("first", r.First)
	}
	return q
}

// SetCursor implements helix.Paginated.
func (r *GetBannedEventsRequest) SetCursor(c helix.Cursor) { r.After = c }

// BannedEvent is one moderation.user.ban or moderation.user.unban event.
// EventData carries broadcaster_id, broadcaster_name, user_id, user_name and
// expires_at (empty for permanent bans).
type BannedEvent struct {
	ID             string            `json:"id" validate:"required"`
	EventType      string            `json:"event_type" validate:"required"`
	EventTimestamp time.Time         `json:"event_timestamp"`
	Version        string            `json:"version" validate:"required"`
	EventData      map[string]string `json:"event_data"`
}

// GetBannedEvents returns ban/unban events for the requested channel.
func GetBannedEvents(ctx context.Context, c *helix.Client, req *GetBannedEventsRequest) (*helix.Envelope[BannedEvent], error) {
	return helix.Get[BannedEvent](ctx, c, req)
}
