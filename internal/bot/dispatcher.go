package bot

import (
	"context"
	"strings"
	"unicode"

	apperrors "github.com/mapleparty/amoria/internal/errors"
	"github.com/mapleparty/amoria/internal/party/domain"
	"github.com/mapleparty/amoria/internal/party/render"
	"github.com/mapleparty/amoria/internal/party/service"
	platformerrors "github.com/mapleparty/amoria/internal/platform/errors"
)

// Command words. The APQ half is matched case-insensitively and an
// optional leading slash is stripped, so "/apq加入" works too.
const (
	cmdCreate = "创建APQ"
	cmdJoin   = "APQ加入"
	cmdQuery  = "APQ查询"
	cmdSelf   = "APQ我的"
	cmdSwap   = "APQ更换"
	cmdLeave  = "APQ退出"
	cmdCancel = "APQ取消"
	cmdDelete = "APQ删除"
	cmdReset  = "APQ重置"
	cmdHelp   = "APQ帮助"
)

// Dispatcher routes normalized chat events to recruitment operations and
// renders the reply text.
type Dispatcher struct {
	svc      *service.Service
	renderer *render.Renderer
	auth     *Authorizer
	locale   string
}

// NewDispatcher wires a dispatcher. locale selects the reply language and
// defaults to zh-CN when empty.
func NewDispatcher(svc *service.Service, renderer *render.Renderer, auth *Authorizer, locale string) *Dispatcher {
	if auth == nil {
		auth = NewAuthorizer(nil)
	}
	return &Dispatcher{svc: svc, renderer: renderer, auth: auth, locale: locale}
}

// Handle runs the command carried by ev, if any. The second return is
// false when the text is not a recognized command and the message should
// be ignored.
func (d *Dispatcher) Handle(ctx context.Context, ev Event) (string, bool) {
	head, rest := splitCommand(ev.Text)
	if head == "" {
		return "", false
	}

	switch {
	case matches(head, cmdCreate):
		return d.create(ctx, ev, rest), true
	case matches(head, cmdJoin):
		return d.join(ctx, ev, rest), true
	case matches(head, cmdQuery):
		d.svc.Track(ctx, ev.ChannelID)
		return d.renderer.Roster(d.svc.Query(ctx)), true
	case matches(head, cmdSelf):
		return d.self(ctx, ev), true
	case matches(head, cmdSwap):
		return d.replace(ctx, ev, rest), true
	case matches(head, cmdLeave):
		return d.leave(ctx, ev), true
	case matches(head, cmdCancel):
		return d.cancel(ctx, ev), true
	case matches(head, cmdDelete):
		return d.adminDelete(ctx, ev, rest), true
	case matches(head, cmdReset):
		return d.adminReset(ctx, ev), true
	case matches(head, cmdHelp):
		return d.renderer.Help(), true
	}
	return "", false
}

func (d *Dispatcher) create(ctx context.Context, ev Event, rest string) string {
	input, ok := d.parseRegistration(ev, rest)
	if !ok {
		return d.usageReply(render.CommandCreate)
	}
	outcome, err := d.svc.Create(ctx, input, ev.ChannelID)
	if err != nil {
		return d.errorReply(err, render.CommandCreate)
	}
	return d.renderer.Created(outcome.Captain)
}

func (d *Dispatcher) join(ctx context.Context, ev Event, rest string) string {
	input, ok := d.parseRegistration(ev, rest)
	if !ok {
		return d.usageReply(render.CommandJoin)
	}
	outcome, err := d.svc.Join(ctx, input, ev.ChannelID)
	if err != nil {
		return d.errorReply(err, render.CommandJoin)
	}
	reply := d.renderer.Joined(outcome.Participant, len(outcome.Session.Members))
	if outcome.Completed && ev.ChannelID == "" {
		// The completion announcement only goes to tracked group
		// channels; a private joiner gets it in the reply.
		reply += "\n\n" + d.renderer.Completion(outcome.Session)
	}
	return reply
}

func (d *Dispatcher) self(ctx context.Context, ev Event) string {
	participant, isCaptain, ok := d.svc.QuerySelf(ctx, ev.UserID)
	if !ok {
		return d.errorReply(platformerrors.New(apperrors.CodeNotAMember, "caller not on the roster"), "")
	}
	return d.renderer.Self(participant, isCaptain)
}

func (d *Dispatcher) replace(ctx context.Context, ev Event, rest string) string {
	input, ok := d.parseRegistration(ev, rest)
	if !ok {
		return d.usageReply(render.CommandReplace)
	}
	updated, err := d.svc.Replace(ctx, input)
	if err != nil {
		return d.errorReply(err, render.CommandReplace)
	}
	return d.renderer.Replaced(updated)
}

func (d *Dispatcher) leave(ctx context.Context, ev Event) string {
	if _, err := d.svc.Leave(ctx, ev.UserID); err != nil {
		return d.errorReply(err, "")
	}
	return d.renderer.Left()
}

func (d *Dispatcher) cancel(ctx context.Context, ev Event) string {
	if err := d.svc.Cancel(ctx, ev.UserID); err != nil {
		return d.errorReply(err, "")
	}
	return d.renderer.Cancelled()
}

func (d *Dispatcher) adminDelete(ctx context.Context, ev Event, rest string) string {
	identifier := strings.TrimSpace(rest)
	if identifier == "" {
		return d.usageReply(render.CommandDelete)
	}
	outcome, err := d.svc.AdminDelete(ctx, identifier, d.auth.IsAdmin(ev.UserID, ev.Admin))
	if err != nil {
		return d.errorReply(err, render.CommandDelete)
	}
	if outcome.CaptainRemoved {
		return d.renderer.CaptainRemoved(outcome.Removed)
	}
	return d.renderer.MemberRemoved(outcome.Removed)
}

func (d *Dispatcher) adminReset(ctx context.Context, ev Event) string {
	if err := d.svc.AdminReset(ctx, d.auth.IsAdmin(ev.UserID, ev.Admin)); err != nil {
		return d.errorReply(err, "")
	}
	return d.renderer.ResetDone()
}

// parseRegistration tokenizes "characterID roleToken job" arguments. The
// job may contain spaces; the role token is validated downstream so a bad
// token reports the specific role error rather than a generic usage one.
func (d *Dispatcher) parseRegistration(ev Event, rest string) (domain.NewParticipantInput, bool) {
	fields := strings.Fields(rest)
	if len(fields) < 3 {
		return domain.NewParticipantInput{}, false
	}
	return domain.NewParticipantInput{
		UserID:      ev.UserID,
		Nickname:    ev.Nickname,
		CharacterID: fields[0],
		RoleToken:   fields[1],
		Job:         strings.Join(fields[2:], " "),
	}, true
}

func (d *Dispatcher) usageReply(command render.Command) string {
	usage, example := d.renderer.Usage(command)
	err := platformerrors.WithMetadata(apperrors.CodeInputInvalid, "malformed command arguments", map[string]string{
		"Usage":   usage,
		"Example": example,
	})
	return apperrors.Localize(err, d.locale)
}

func (d *Dispatcher) errorReply(err error, command render.Command) string {
	if command != "" && apperrors.IsCode(err, apperrors.CodeInputInvalid) {
		return d.usageReply(command)
	}
	return apperrors.Localize(err, d.locale)
}

func splitCommand(text string) (head, rest string) {
	text = strings.TrimSpace(text)
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return text, ""
	}
	return text[:i], strings.TrimSpace(text[i:])
}

// matches compares a command head against a command word, ignoring ASCII
// case and one optional leading slash.
func matches(head, command string) bool {
	head = strings.TrimPrefix(head, "/")
	return strings.EqualFold(head, command)
}
