// Package moderation defines the Helix chat-moderation endpoints: channel
// moderators, banned users, their event feeds, and AutoMod message checks.
//
// Each endpoint exposes a request constructor that validates mandatory
// fields at build time, and a call function that executes the request
// through a helix.Client.
package moderation

import "github.com/streamforge/helixmod/pkg/helix"

// Resource paths below the Helix API origin.
const (
	pathModerators      = "moderation/moderators"
	pathModeratorEvents = "moderation/moderators/events"
	pathBannedUsers     = "moderation/banned"
	pathBannedEvents    = "moderation/banned/events"
	pathAutoModStatus   = "moderation/enforcements/status"
)

// readScopes is the scope set shared by every moderation endpoint.
var readScopes = []helix.Scope{helix.ScopeModerationRead}
