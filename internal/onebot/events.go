// Package onebot connects to a OneBot v11 endpoint over a forward
// websocket, normalizes inbound message events, and sends replies and
// broadcasts back as API actions.
package onebot

import (
	"strconv"

	"github.com/mapleparty/amoria/internal/bot"
)

// Sender is the OneBot v11 sender block attached to a message event. Role
// is only populated for group messages ("owner", "admin" or "member").
type Sender struct {
	UserID   int64  `json:"user_id"`
	Nickname string `json:"nickname"`
	Card     string `json:"card"`
	Role     string `json:"role"`
	Title    string `json:"title"`
}

// MessageEvent is a OneBot v11 message push. Non-message pushes (notices,
// heartbeats, API echoes) decode with an empty PostType and are skipped.
type MessageEvent struct {
	PostType    string `json:"post_type"`
	MessageType string `json:"message_type"`
	SubType     string `json:"sub_type"`
	MessageID   int64  `json:"message_id"`
	SelfID      int64  `json:"self_id"`
	GroupID     int64  `json:"group_id"`
	UserID      int64  `json:"user_id"`
	RawMessage  string `json:"raw_message"`
	Sender      Sender `json:"sender"`
}

// Normalize converts the wire event into the transport-agnostic form the
// dispatcher consumes. The group id becomes the channel identifier;
// private messages carry no channel. The group card takes precedence over
// the account nickname as display name.
func (e MessageEvent) Normalize() bot.Event {
	nickname := e.Sender.Card
	if nickname == "" {
		nickname = e.Sender.Nickname
	}

	channelID := ""
	if e.MessageType == "group" && e.GroupID != 0 {
		channelID = strconv.FormatInt(e.GroupID, 10)
	}

	return bot.Event{
		UserID:    strconv.FormatInt(e.UserID, 10),
		Nickname:  nickname,
		ChannelID: channelID,
		Admin: bot.AdminHint{
			IsOwner: e.Sender.Role == "owner",
			IsAdmin: e.Sender.Role == "admin",
			Role:    e.Sender.Role,
		},
		Text: e.RawMessage,
	}
}
