package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "party.role.bride", "bride")
	message.SetString(lang, "party.role.groom", "groom")
	message.SetString(lang, "party.captain_marker", "(captain)")

	message.SetString(lang, "party.created", "APQ party created! You are in: character %s, %s %s\nWaiting for more sign-ups...")
	message.SetString(lang, "party.joined", "Joined the APQ party! Character %s, %s %s (%d/%d)")
	message.SetString(lang, "party.roster.header", "=== APQ Party Status ===")
	message.SetString(lang, "party.roster.empty", "No APQ party is recruiting. Start one with /创建APQ.")
	message.SetString(lang, "party.stats", "[Stats] members: %d/%d, brides: %d, grooms: %d")
	message.SetString(lang, "party.completion.header", "=== APQ Party Complete ===")
	message.SetString(lang, "party.completion.footer", "The party is full, time for APQ! The roster has been cleared for the next run.")
	message.SetString(lang, "party.self", "Your registration: %s\nRole: %s")
	message.SetString(lang, "party.self.captain", "captain")
	message.SetString(lang, "party.self.member", "member")
	message.SetString(lang, "party.replaced", "Registration updated: character %s, %s %s")
	message.SetString(lang, "party.left", "You left the APQ party.")
	message.SetString(lang, "party.cancelled", "APQ party cancelled, roster cleared.")
	message.SetString(lang, "party.member_removed", "Removed character %s(%s) from the APQ party.")
	message.SetString(lang, "party.captain_removed", "Removed captain %s(%s); the APQ party has been dissolved.")
	message.SetString(lang, "party.reset", "APQ roster data has been reset.")

	message.SetString(lang, "party.usage.create", "/创建APQ <characterID> <br/gr/新郎/新娘> <job>")
	message.SetString(lang, "party.example.create", "/创建APQ dingzhen gr brawler")
	message.SetString(lang, "party.usage.join", "/APQ加入 <characterID> <br/gr/新郎/新娘> <job>")
	message.SetString(lang, "party.example.join", "/APQ加入 dingzhen br nightlord")
	message.SetString(lang, "party.usage.replace", "/APQ更换 <characterID> <br/gr/新郎/新娘> <job>")
	message.SetString(lang, "party.example.replace", "/APQ更换 dingzhen2 gr brawler")
	message.SetString(lang, "party.usage.delete", "/APQ删除 <characterID|QQ>")
	message.SetString(lang, "party.example.delete", "/APQ删除 dingzhen")

	message.SetString(lang, "party.help",
		"APQ party commands:\n"+
			"/创建APQ <characterID> <br/gr/新郎/新娘> <job> — create a party and join it\n"+
			"/APQ加入 <characterID> <br/gr/新郎/新娘> <job> — sign up\n"+
			"/APQ查询 — show the current roster\n"+
			"/APQ我的 — show your registration\n"+
			"/APQ更换 <characterID> <br/gr/新郎/新娘> <job> — update your registration\n"+
			"/APQ退出 — leave the party (captains cancel instead)\n"+
			"/APQ取消 — cancel the party (captain only)\n"+
			"/APQ删除 <characterID|QQ> — remove a member (admin only)\n"+
			"/APQ重置 — reset roster data (admin only)")
}
