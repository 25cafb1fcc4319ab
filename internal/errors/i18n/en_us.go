package i18n

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[string]string{
		CodeUnknown: "Something went wrong, please try again later.",

		// Input errors
		CodeInputInvalid:     "Invalid format. Usage: {{.Usage}}\nExample: {{.Example}}",
		CodeRoleTokenInvalid: "Invalid role, expected br/新娘 or gr/新郎",

		// Session lifecycle errors
		CodeSessionAlreadyActive: "An APQ party is already recruiting. Cancel it with /APQ取消 first.",
		CodeNoActiveSession:      "No APQ party is recruiting. Start one with /创建APQ.",

		// Roster errors
		CodeCharacterDuplicate: "Character {{.CharacterID}} is already registered by another player.",
		CodeNotAMember:         "You have not joined the APQ party yet.",
		CodeTargetNotFound:     "No APQ record found for {{.Target}}.",

		// Authority errors
		CodeForbidden:          "Only admins may perform this operation.",
		CodeCaptainCannotLeave: "The captain cannot leave the party. Use /APQ取消 to end the run.",
	},
}
