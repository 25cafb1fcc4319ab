package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.SimplifiedChinese

	message.SetString(lang, "party.role.bride", "新娘")
	message.SetString(lang, "party.role.groom", "新郎")
	message.SetString(lang, "party.captain_marker", "（队长）")

	message.SetString(lang, "party.created", "APQ组队已创建！你已加入：角色 %s，%s %s\n等待其他人加入...")
	message.SetString(lang, "party.joined", "已加入APQ！角色：%s，%s %s（%d/%d）")
	message.SetString(lang, "party.roster.header", "=== APQ 组队状态 ===")
	message.SetString(lang, "party.roster.empty", "当前没有APQ组队，使用 /创建APQ 创建新的组队。")
	message.SetString(lang, "party.stats", "【统计】人数：%d/%d，新娘：%d，新郎：%d")
	message.SetString(lang, "party.completion.header", "=== APQ 集结完成 ===")
	message.SetString(lang, "party.completion.footer", "人数已满，APQ活动开始！数据已清空，准备下一场活动。")
	message.SetString(lang, "party.self", "你的报名信息：%s\n身份:%s")
	message.SetString(lang, "party.self.captain", "队长")
	message.SetString(lang, "party.self.member", "队员")
	message.SetString(lang, "party.replaced", "已更新角色信息：角色 %s，%s %s")
	message.SetString(lang, "party.left", "已退出APQ组队。")
	message.SetString(lang, "party.cancelled", "APQ活动已取消，数据已清空。")
	message.SetString(lang, "party.member_removed", "已将角色 %s(%s) 从APQ中移除。")
	message.SetString(lang, "party.captain_removed", "已移除队长 %s(%s)，APQ组队已解散。")
	message.SetString(lang, "party.reset", "已重置APQ组队数据。")

	message.SetString(lang, "party.usage.create", "/创建APQ <角色ID> <br/gr/新郎/新娘> <职业>")
	message.SetString(lang, "party.example.create", "/创建APQ dingzhen gr 拳手")
	message.SetString(lang, "party.usage.join", "/APQ加入 <角色ID> <br/gr/新郎/新娘> <职业>")
	message.SetString(lang, "party.example.join", "/APQ加入 dingzhen br 刀飞")
	message.SetString(lang, "party.usage.replace", "/APQ更换 <角色ID> <br/gr/新郎/新娘> <职业>")
	message.SetString(lang, "party.example.replace", "/APQ更换 dingzhen2 gr 拳手")
	message.SetString(lang, "party.usage.delete", "/APQ删除 <角色ID|QQ号>")
	message.SetString(lang, "party.example.delete", "/APQ删除 dingzhen")

	message.SetString(lang, "party.help",
		"APQ 组队指令：\n"+
			"/创建APQ <角色ID> <br/gr/新郎/新娘> <职业> — 创建组队并加入\n"+
			"/APQ加入 <角色ID> <br/gr/新郎/新娘> <职业> — 报名加入\n"+
			"/APQ查询 — 查看当前组队状态\n"+
			"/APQ我的 — 查看自己的报名信息\n"+
			"/APQ更换 <角色ID> <br/gr/新郎/新娘> <职业> — 更换角色信息\n"+
			"/APQ退出 — 退出组队（队长请用取消）\n"+
			"/APQ取消 — 取消组队（仅队长）\n"+
			"/APQ删除 <角色ID|QQ号> — 移除成员（仅管理员）\n"+
			"/APQ重置 — 重置组队数据（仅管理员）")
}
