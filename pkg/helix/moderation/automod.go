package moderation

import (
	"context"

	"github.com/streamforge/helixmod/pkg/helix"
)

// CheckAutoModStatusRequest asks whether messages meet the channel's AutoMod
// requirements.
type CheckAutoModStatusRequest struct {
	// BroadcasterID must match the user ID in the bearer token.
	BroadcasterID string `validate:"required"`
}

// NewCheckAutoModStatusRequest builds a Check AutoMod Status request. It
// fails when the broadcaster ID is empty.
func NewCheckAutoModStatusRequest(broadcasterID string) (*CheckAutoModStatusRequest, error) {
	r := &CheckAutoModStatusRequest{BroadcasterID: broadcasterID}
	if err := helix.ValidateRequest(pathAutoModStatus, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Path implements helix.Request.
func (r *CheckAutoModStatusRequest) Path() string { return pathAutoModStatus }

// Scopes implements helix.Request.
func (r *CheckAutoModStatusRequest) Scopes() []helix.Scope { return readScopes }

// Query implements helix.RequestPost.
func (r *CheckAutoModStatusRequest) Query() helix.Query {
	var q helix.Query
	q.Add("broadcaster_id", r.BroadcasterID)
	return q
}

// AutoModMessage is one message submitted for an AutoMod check.
type AutoModMessage struct {
	// MsgID is a developer-generated identifier mapping messages to results.
	MsgID string `json:"msg_id" validate:"required"`
	// MsgText is the message text to check.
	MsgText string `json:"msg_text" validate:"required"`
	// UserID is the sender's user ID.
	UserID string `json:"user_id" validate:"required"`
}

// AutoModStatus is the check result for one submitted message.
type AutoModStatus struct {
	MsgID       string `json:"msg_id" validate:"required"`
	IsPermitted bool   `json:"is_permitted"`
}

// CheckAutoModStatus submits messages for an AutoMod check. Every message
// is validated before dispatch; results map back to messages by MsgID.
func CheckAutoModStatus(ctx context.Context, c *helix.Client, req *CheckAutoModStatusRequest, msgs []AutoModMessage) (*helix.Envelope[AutoModStatus], error) {
	for i := range msgs {
		if err := helix.ValidateRequest(pathAutoModStatus, &msgs[i]); err != nil {
			return nil, err
		}
	}
	return helix.Post[AutoModMessage, AutoModStatus](ctx, c, req, msgs)
}
