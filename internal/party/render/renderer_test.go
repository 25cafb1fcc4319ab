package render

import (
	"strings"
	"testing"

	"github.com/mapleparty/amoria/internal/party/domain"
)

func sampleSession() domain.Session {
	captain := domain.Participant{UserID: "10001", Nickname: "Neo", CharacterID: "neo", Role: domain.RoleBride, Job: "archer"}
	return domain.Session{
		Status:  domain.StatusRecruiting,
		Captain: captain,
		Members: []domain.Participant{
			captain,
			{UserID: "10002", Nickname: "Trin", CharacterID: "trin", Role: domain.RoleGroom, Job: "拳手"},
		},
		Channels: []string{"42"},
	}
}

func TestParticipantLine(t *testing.T) {
	r := NewRenderer("zh-CN")
	p := domain.Participant{UserID: "10001", CharacterID: "dingzhen", Role: domain.RoleBride, Job: "刀飞"}

	line := r.ParticipantLine(p)
	if line != "[dingzhen] 新娘 刀飞 (QQ: 10001)" {
		t.Fatalf("unexpected line: %q", line)
	}
}

func TestParticipantLineMissingFields(t *testing.T) {
	r := NewRenderer("zh-CN")

	line := r.ParticipantLine(domain.Participant{})
	if line != "[?] ? ? (QQ: ?)" {
		t.Fatalf("expected placeholders, got %q", line)
	}
}

func TestRosterMarksCaptainAndCountsRoles(t *testing.T) {
	r := NewRenderer("zh-CN")
	out := r.Roster(sampleSession())

	if !strings.Contains(out, "=== APQ 组队状态 ===") {
		t.Fatalf("missing header: %q", out)
	}
	if !strings.Contains(out, "[neo] 新娘 archer (QQ: 10001) （队长）") {
		t.Fatalf("missing captain marker: %q", out)
	}
	if !strings.Contains(out, "人数：2/6") {
		t.Fatalf("missing capacity fraction: %q", out)
	}
	if !strings.Contains(out, "新娘：1") || !strings.Contains(out, "新郎：1") {
		t.Fatalf("missing role counts: %q", out)
	}
}

func TestRosterEmptyState(t *testing.T) {
	r := NewRenderer("zh-CN")
	session := domain.NewSession()

	out := r.Roster(session)
	if !strings.Contains(out, "当前没有APQ组队") {
		t.Fatalf("expected empty-state message, got %q", out)
	}
}

func TestCompletionIncludesFooter(t *testing.T) {
	r := NewRenderer("zh-CN")
	out := r.Completion(sampleSession())

	if !strings.Contains(out, "=== APQ 集结完成 ===") {
		t.Fatalf("missing completion header: %q", out)
	}
	if !strings.Contains(out, "APQ活动开始") {
		t.Fatalf("missing completion footer: %q", out)
	}
}

func TestEnglishLocale(t *testing.T) {
	r := NewRenderer("en-US")

	out := r.Roster(sampleSession())
	if !strings.Contains(out, "=== APQ Party Status ===") {
		t.Fatalf("expected english header, got %q", out)
	}
	if !strings.Contains(out, "(captain)") {
		t.Fatalf("expected english captain marker, got %q", out)
	}
}

func TestUsagePairs(t *testing.T) {
	r := NewRenderer("zh-CN")
	for _, command := range []Command{CommandCreate, CommandJoin, CommandReplace, CommandDelete} {
		usage, example := r.Usage(command)
		if usage == "" || example == "" {
			t.Fatalf("expected usage and example for %s", command)
		}
	}
}

func TestHelpListsAllCommands(t *testing.T) {
	r := NewRenderer("zh-CN")
	help := r.Help()
	for _, name := range []string{"创建APQ", "APQ加入", "APQ查询", "APQ我的", "APQ更换", "APQ退出", "APQ取消", "APQ删除", "APQ重置"} {
		if !strings.Contains(help, name) {
			t.Fatalf("help missing %s: %q", name, help)
		}
	}
}
