package helix

// Scope is a named OAuth permission a credential must hold to call a given
// endpoint. Each request advertises the scopes it requires; whether they are
// verified locally before dispatch is a client setting (WithScopeEnforcement).
type Scope string

// Scopes used by the moderation endpoints.
const (
	ScopeModerationRead Scope = "moderation:read"
)

// MissingScopes returns the required scopes not present in granted, in the
// order they were required. An empty result means the credential satisfies
// the requirement.
func MissingScopes(granted, required []Scope) []Scope {
	var missing []Scope
	for _, want := range required {
		found := false
		for _, have := range granted {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}
	return missing
}
