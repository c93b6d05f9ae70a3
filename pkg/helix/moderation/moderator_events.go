package moderation

import (
	"context"
	"time"

	"github.com/streamforge/helixmod/pkg/helix"
)

// GetModeratorEventsRequest lists moderator add and remove events for a
// channel.
type GetModeratorEventsRequest struct {
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

// GetModeratorEventsOption configures a GetModeratorEventsRequest.
type GetModeratorEventsOption func(*GetModeratorEventsRequest)

// WithModeratorEventsUserIDs filters the events to the given user IDs.
func WithModeratorEventsUserIDs(ids ...string) GetModeratorEventsOption {
	return func(r *GetModeratorEventsRequest) {
		r.UserIDs = ids
	}
}

// WithModeratorEventsAfter starts the listing at the given cursor.
func WithModeratorEventsAfter(c helix.Cursor) GetModeratorEventsOption {
	return func(r *GetModeratorEventsRequest) {
		r.After = c
	}
}

// WithModeratorEventsFirst caps the number of results per page.
func WithModeratorEventsFirst(n int) GetModeratorEventsOption {
	return func(r *GetModeratorEventsRequest) {
		r.First = n
	}
}

// NewGetModeratorEventsRequest builds a Get Moderator Events request. It
// fails when the broadcaster ID is empty or the page size is out of range.
func NewGetModeratorEventsRequest(broadcasterID string, opts ...GetModeratorEventsOption) (*GetModeratorEventsRequest, error) {
	r := &GetModeratorEventsRequest{BroadcasterID: broadcasterID}
	for _, opt := range opts {
		opt(r)
	}
	if err := helix.ValidateRequest(pathModeratorEvents, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Path implements helix.Request.
func (r *GetModeratorEventsRequest) Path() string { return pathModeratorEvents }

// Scopes implements helix.Request.
func (r *GetModeratorEventsRequest) Scopes() []helix.Scope { return readScopes }

// Query implements helix.RequestGet.
func (r *GetModeratorEventsRequest) Query() helix.Query {
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
func (r *GetModeratorEventsRequest) SetCursor(c helix.Cursor) { r.After = c }

// ModeratorEvent is one moderation.moderator.add or
// moderation.moderator.remove event.
type ModeratorEvent struct {
	ID             string            `json:"id" validate:"required"`
	EventType      string            `json:"event_type" validate:"required"`
	EventTimestamp time.Time         `json:"event_timestamp"`
	Version        string            `json:"version" validate:"required"`
	EventData      map[string]string `json:"event_data"`
}

// GetModeratorEvents returns moderator add/remove events for the requested
// channel.
func GetModeratorEvents(ctx context.Context, c *helix.Client, req *GetModeratorEventsRequest) (*helix.Envelope[ModeratorEvent], error) {
	return helix.Get[ModeratorEvent](ctx, c, req)
}
