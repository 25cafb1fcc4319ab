package domain

import "testing"

func member(userID, characterID string, role Role) Participant {
	return Participant{UserID: userID, Nickname: "n" + userID, CharacterID: characterID, Role: role, Job: "job"}
}

func TestSessionActive(t *testing.T) {
	session := NewSession()
	if session.Active() {
		t.Fatal("idle session must not be active")
	}

	session.Status = StatusRecruiting
	if session.Active() {
		t.Fatal("recruiting with empty roster must not be active")
	}

	session.Members = []Participant{member("1", "a", RoleBride)}
	if !session.Active() {
		t.Fatal("expected active session")
	}
}

func TestSessionResetClearsEverything(t *testing.T) {
	session := Session{
		Status:   StatusRecruiting,
		Captain:  member("1", "a", RoleBride),
		Members:  []Participant{member("1", "a", RoleBride)},
		Channels: []string{"42"},
	}

	session.Reset()

	if session.Status != StatusIdle {
		t.Fatalf("expected idle status, got %q", session.Status)
	}
	if session.Captain.UserID != "" {
		t.Fatal("expected captain cleared")
	}
	if len(session.Members) != 0 {
		t.Fatal("expected members cleared")
	}
	if len(session.Channels) != 0 {
		t.Fatal("expected tracked channels cleared")
	}
}

func TestFindByCharacterIDIsCaseSensitive(t *testing.T) {
	session := Session{Members: []Participant{member("1", "Dingzhen", RoleGroom)}}

	if _, ok := session.FindByCharacterID("dingzhen"); ok {
		t.Fatal("expected case-sensitive match to fail")
	}
	if i, ok := session.FindByCharacterID(" Dingzhen "); !ok || i != 0 {
		t.Fatalf("expected trimmed exact match at 0, got %d %v", i, ok)
	}
}

func TestRemoveByUserIDPreservesOrder(t *testing.T) {
	session := Session{Members: []Participant{
		member("1", "a", RoleBride),
		member("2", "b", RoleGroom),
		member("3", "c", RoleBride),
	}}

	if !session.RemoveByUserID("2") {
		t.Fatal("expected removal")
	}
	if session.RemoveByUserID("2") {
		t.Fatal("expected second removal to be a no-op")
	}
	if len(session.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(session.Members))
	}
	if session.Members[0].UserID != "1" || session.Members[1].UserID != "3" {
		t.Fatal("expected join order preserved after removal")
	}
}

func TestTrackChannelDedupesAndSkipsEmpty(t *testing.T) {
	session := NewSession()

	if session.TrackChannel("   ") {
		t.Fatal("expected empty channel to be ignored")
	}
	if !session.TrackChannel("42") {
		t.Fatal("expected first insert to change the set")
	}
	if session.TrackChannel("42") {
		t.Fatal("expected duplicate insert to be a no-op")
	}
	if !session.TrackChannel("43") {
		t.Fatal("expected second channel insert")
	}
	if len(session.Channels) != 2 {
		t.Fatalf("expected 2 tracked channels, got %d", len(session.Channels))
	}
}

func TestRoleCounts(t *testing.T) {
	session := Session{Members: []Participant{
		member("1", "a", RoleBride),
		member("2", "b", RoleGroom),
		member("3", "c", RoleBride),
	}}

	brides, grooms := session.RoleCounts()
	if brides != 2 || grooms != 1 {
		t.Fatalf("expected 2 brides and 1 groom, got %d and %d", brides, grooms)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	session := Session{
		Status:   StatusRecruiting,
		Captain:  member("1", "a", RoleBride),
		Members:  []Participant{member("1", "a", RoleBride)},
		Channels: []string{"42"},
	}

	clone := session.Clone()
	session.Members[0].CharacterID = "mutated"
	session.Channels[0] = "mutated"

	if clone.Members[0].CharacterID != "a" {
		t.Fatal("expected cloned members to be independent")
	}
	if clone.Channels[0] != "42" {
		t.Fatal("expected cloned channels to be independent")
	}
}
