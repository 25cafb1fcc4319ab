package i18n

var zhCNCatalog = &Catalog{
	locale: "zh-CN",
	messages: map[string]string{
		CodeUnknown: "操作失败，请稍后再试。",

		// Input errors
		CodeInputInvalid:     "格式错误！用法：{{.Usage}}\n示例：{{.Example}}",
		CodeRoleTokenInvalid: "性别参数错误，必须是 br/新娘 或 gr/新郎",

		// Session lifecycle errors
		CodeSessionAlreadyActive: "当前已有APQ组队进行中，请先使用 /APQ取消 结束当前活动。",
		CodeNoActiveSession:      "当前没有APQ组队，请先使用 /创建APQ 创建组队。",

		// Roster errors
		CodeCharacterDuplicate: "角色 {{.CharacterID}} 已被其他玩家报名。",
		CodeNotAMember:         "你还没有加入APQ组队。",
		CodeTargetNotFound:     "未找到 {{.Target}} 的APQ记录。",

		// Authority errors
		CodeForbidden:          "仅管理员可执行该操作。",
		CodeCaptainCannotLeave: "队长不能退出组队，请使用 /APQ取消 结束当前活动。",
	},
}
