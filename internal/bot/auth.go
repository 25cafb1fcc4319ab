package bot

import "strings"

// Authorizer decides whether a sender may run administrative commands. A
// sender qualifies either through the static allow-list configured at
// startup or through the authority flags the host platform attaches to
// the message.
type Authorizer struct {
	allowed map[string]struct{}
}

// NewAuthorizer builds an Authorizer from a list of user identifiers.
// Blank entries are ignored.
func NewAuthorizer(userIDs []string) *Authorizer {
	allowed := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		allowed[id] = struct{}{}
	}
	return &Authorizer{allowed: allowed}
}

// IsAdmin reports whether the sender holds admin standing.
func (a *Authorizer) IsAdmin(userID string, hint AdminHint) bool {
	if _, ok := a.allowed[strings.TrimSpace(userID)]; ok {
		return true
	}
	return hint.Elevated()
}
