package helix_test

import (
	"github.com/streamforge/helixmod/pkg/helix"
)

// listRequest is a minimal paged listing request for core tests.
type listRequest struct {
	BroadcasterID string
	UserIDs       []string
	After         helix.Cursor
}

func (r *listRequest) Path() string { return "moderation/banned" }

func (r *listRequest) Scopes() []helix.Scope {
	return []helix.Scope{helix.ScopeModerationRead}
}

func (r *listRequest) Query() helix.Query {
	var q helix.Query
	q.Add("broadcaster_id", r.BroadcasterID)
	for _, id := range r.UserIDs {
		q.Add("user_id", id)
	}
	if r.After != "" {
		q.Add("after", string(r.After))
	}
	return q
}

func (r *listRequest) SetCursor(c helix.Cursor) { r.After = c }

var (
	_ helix.RequestGet = (*listRequest)(nil)
	_ helix.Paginated  = (*listRequest)(nil)
)
