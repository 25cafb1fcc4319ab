// Package render turns roster state and operation outcomes into the
// localized chat replies users see.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mapleparty/amoria/internal/party/domain"
)

// Command identifies a user-facing command for usage rendering.
type Command string

const (
	// CommandCreate opens a recruitment session.
	CommandCreate Command = "create"
	// CommandJoin registers the sender on the roster.
	CommandJoin Command = "join"
	// CommandReplace edits the sender's registration.
	CommandReplace Command = "replace"
	// CommandDelete removes a member by character id or QQ number.
	CommandDelete Command = "delete"
)

const missingField = "?"

// Renderer produces chat reply text for one configured locale.
type Renderer struct {
	printer *message.Printer
}

// NewRenderer builds a renderer for locale, defaulting to zh-CN.
func NewRenderer(locale string) *Renderer {
	tag := language.SimplifiedChinese
	if strings.EqualFold(locale, "en-US") || strings.EqualFold(locale, "en") {
		tag = language.English
	}
	return &Renderer{printer: message.NewPrinter(tag)}
}

// RoleLabel renders the localized pairing label for a role.
func (r *Renderer) RoleLabel(role domain.Role) string {
	switch role {
	case domain.RoleBride:
		return r.printer.Sprintf("party.role.bride")
	case domain.RoleGroom:
		return r.printer.Sprintf("party.role.groom")
	}
	return missingField
}

// ParticipantLine renders one roster entry:
// [characterID] role job (QQ: userID). Missing fields render as "?".
func (r *Renderer) ParticipantLine(p domain.Participant) string {
	characterID := orMissing(p.CharacterID)
	job := orMissing(p.Job)
	userID := orMissing(p.UserID)
	role := missingField
	if p.Role.Valid() {
		role = r.RoleLabel(p.Role)
	}
	return fmt.Sprintf("[%s] %s %s (QQ: %s)", characterID, role, job, userID)
}

// Created renders the create-session confirmation.
func (r *Renderer) Created(p domain.Participant) string {
	return r.printer.Sprintf("party.created", p.CharacterID, r.RoleLabel(p.Role), p.Job)
}

// Joined renders the join confirmation with the current roster fill.
func (r *Renderer) Joined(p domain.Participant, total int) string {
	return r.printer.Sprintf("party.joined", p.CharacterID, r.RoleLabel(p.Role), p.Job, total, domain.Capacity)
}

// Roster renders the full recruitment status view.
func (r *Renderer) Roster(session domain.Session) string {
	if !session.Active() {
		return r.printer.Sprintf("party.roster.empty")
	}

	var lines []string
	lines = append(lines, r.printer.Sprintf("party.roster.header"))
	lines = append(lines, r.memberLines(session)...)
	lines = append(lines, "", r.statsLine(session))
	return strings.Join(lines, "\n")
}

// Completion renders the final-roster announcement broadcast when the
// party fills up.
func (r *Renderer) Completion(session domain.Session) string {
	var lines []string
	lines = append(lines, r.printer.Sprintf("party.completion.header"))
	lines = append(lines, r.memberLines(session)...)
	lines = append(lines, "", r.statsLine(session))
	lines = append(lines, "", r.printer.Sprintf("party.completion.footer"))
	return strings.Join(lines, "\n")
}

// Self renders the sender's own registration and roster role.
func (r *Renderer) Self(p domain.Participant, isCaptain bool) string {
	label := r.printer.Sprintf("party.self.member")
	if isCaptain {
		label = r.printer.Sprintf("party.self.captain")
	}
	return r.printer.Sprintf("party.self", r.ParticipantLine(p), label)
}

// Replaced renders the replace-registration confirmation.
func (r *Renderer) Replaced(p domain.Participant) string {
	return r.printer.Sprintf("party.replaced", p.CharacterID, r.RoleLabel(p.Role), p.Job)
}

// Left renders the leave confirmation.
func (r *Renderer) Left() string {
	return r.printer.Sprintf("party.left")
}

// Cancelled renders the captain cancellation notice.
func (r *Renderer) Cancelled() string {
	return r.printer.Sprintf("party.cancelled")
}

// MemberRemoved renders the admin removal notice for a regular member.
func (r *Renderer) MemberRemoved(p domain.Participant) string {
	return r.printer.Sprintf("party.member_removed", p.CharacterID, displayName(p))
}

// CaptainRemoved renders the notice for an admin removal that dissolved
// the whole session.
func (r *Renderer) CaptainRemoved(p domain.Participant) string {
	return r.printer.Sprintf("party.captain_removed", p.CharacterID, displayName(p))
}

// ResetDone renders the admin reset confirmation.
func (r *Renderer) ResetDone() string {
	return r.printer.Sprintf("party.reset")
}

// Usage renders the syntax and an example for a command.
func (r *Renderer) Usage(command Command) (usage, example string) {
	switch command {
	case CommandCreate:
		return r.printer.Sprintf("party.usage.create"), r.printer.Sprintf("party.example.create")
	case CommandJoin:
		return r.printer.Sprintf("party.usage.join"), r.printer.Sprintf("party.example.join")
	case CommandReplace:
		return r.printer.Sprintf("party.usage.replace"), r.printer.Sprintf("party.example.replace")
	case CommandDelete:
		return r.printer.Sprintf("party.usage.delete"), r.printer.Sprintf("party.example.delete")
	}
	return "", ""
}

// Help renders the command overview.
func (r *Renderer) Help() string {
	return r.printer.Sprintf("party.help")
}

func (r *Renderer) memberLines(session domain.Session) []string {
	lines := make([]string, 0, len(session.Members))
	for _, member := range session.Members {
		line := "  - " + r.ParticipantLine(member)
		if session.IsCaptain(member.UserID) {
			line += " " + r.printer.Sprintf("party.captain_marker")
		}
		lines = append(lines, line)
	}
	return lines
}

func (r *Renderer) statsLine(session domain.Session) string {
	brides, grooms := session.RoleCounts()
	return r.printer.Sprintf("party.stats", len(session.Members), domain.Capacity, brides, grooms)
}

func orMissing(value string) string {
	if strings.TrimSpace(value) == "" {
		return missingField
	}
	return value
}

func displayName(p domain.Participant) string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return orMissing(p.UserID)
}
