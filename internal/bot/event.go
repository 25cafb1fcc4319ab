// Package bot maps inbound chat messages onto recruitment operations and
// renders the replies. It is transport-agnostic: adapters normalize their
// wire events into Event and hand them to the Dispatcher.
package bot

// AdminHint carries the host platform's own authority flags for a sender,
// as reported alongside the message. Any set flag grants admin standing in
// addition to the static allow-list.
type AdminHint struct {
	IsOwner    bool
	IsAdmin    bool
	Role       string
	Permission string
}

// Elevated reports whether the hint alone grants admin standing.
func (h AdminHint) Elevated() bool {
	if h.IsOwner || h.IsAdmin {
		return true
	}
	switch h.Role {
	case "owner", "admin", "administrator":
		return true
	}
	switch h.Permission {
	case "OWNER", "ADMINISTRATOR", "owner", "administrator", "admin":
		return true
	}
	return false
}

// Event is a normalized inbound chat message. ChannelID is empty for
// private conversations.
type Event struct {
	UserID    string
	Nickname  string
	ChannelID string
	Admin     AdminHint
	Text      string
}
