package moderation

import (
	"context"

	"github.com/streamforge/helixmod/pkg/helix"
)

// GetModeratorsRequest lists the moderators of a channel.
type GetModeratorsRequest struct {
	// BroadcasterID must match the user ID in the bearer token.
	BroadcasterID string `validate:"required"`
	// After is the forward pagination cursor from a prior response.
	After helix.Cursor
}

// GetModeratorsOption configures a GetModeratorsRequest.
type GetModeratorsOption func(*GetModeratorsRequest)

// WithModeratorsAfter starts the listing at the given cursor.
func WithModeratorsAfter(c helix.Cursor) GetModeratorsOption {
	return func(r *GetModeratorsRequest) {
		r.After = c
	}
}

// NewGetModeratorsRequest builds a Get Moderators request. It fails when the
// broadcaster ID is empty.
func NewGetModeratorsRequest(broadcasterID string, opts ...GetModeratorsOption) (*GetModeratorsRequest, error) {
	r := &GetModeratorsRequest{BroadcasterID: broadcasterID}
	for _, opt := range opts {
		opt(r)
	}
	if err := helix.ValidateRequest(pathModerators, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Path implements helix.Request.
func (r *GetModeratorsRequest) Path() string { return pathModerators }

// Scopes implements helix.Request.
func (r *GetModeratorsRequest) Scopes() []helix.Scope { return readScopes }

// Query implements helix.RequestGet. Parameters appear in field declaration
// order with absent optional fields omitted.
func (r *GetModeratorsRequest) Query() helix.Query {
	var q helix.Query
	q.Add("broadcaster_id", r.BroadcasterID)
	if r.After != "" {
		q.Add("after", string(r.After))
	}
	return q
}

// SetCursor implements helix.Paginated.
func (r *GetModeratorsRequest) SetCursor(c helix.Cursor) { r.After = c }

// Moderator is one moderator record.
type Moderator struct {
	UserID   string `json:"user_id" validate:"required"`
	UserName string `json:"user_name" validate:"required"`
}

// GetModerators returns the moderators of the requested channel.
func GetModerators(ctx context.Context, c *helix.Client, req *GetModeratorsRequest) (*helix.Envelope[Moderator], error) {
	return helix.Get[Moderator](ctx, c, req)
}
