// Package i18n holds per-locale message catalogs for user-facing error text.
package i18n

import (
	"strings"
	"text/template"
)

// Error codes must match the codes defined in internal/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown              = "UNKNOWN"
	CodeInputInvalid         = "INPUT_INVALID"
	CodeRoleTokenInvalid     = "ROLE_TOKEN_INVALID"
	CodeSessionAlreadyActive = "SESSION_ALREADY_ACTIVE"
	CodeNoActiveSession      = "NO_ACTIVE_SESSION"
	CodeCharacterDuplicate   = "CHARACTER_DUPLICATE"
	CodeNotAMember           = "NOT_A_MEMBER"
	CodeTargetNotFound       = "TARGET_NOT_FOUND"
	CodeForbidden            = "FORBIDDEN"
	CodeCaptainCannotLeave   = "CAPTAIN_CANNOT_LEAVE"
)

// Catalog maps error codes to localized message templates.
type Catalog struct {
	locale   string
	messages map[string]string
}

// Locale returns the catalog locale identifier.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message for code, executing {{.Field}} templates
// against metadata. Unknown codes fall back to the generic message, and a
// template failure falls back to the raw template text.
func (c *Catalog) Format(code string, metadata map[string]string) string {
	msg, ok := c.messages[code]
	if !ok {
		msg = c.messages[CodeUnknown]
	}
	if !strings.Contains(msg, "{{") {
		return msg
	}

	tmpl, err := template.New(code).Parse(msg)
	if err != nil {
		return msg
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, metadata); err != nil {
		return msg
	}
	return out.String()
}

var catalogs = map[string]*Catalog{
	"zh-CN": zhCNCatalog,
	"en-US": enUSCatalog,
}

// GetCatalog returns the catalog for locale, defaulting to zh-CN.
func GetCatalog(locale string) *Catalog {
	if catalog, ok := catalogs[locale]; ok {
		return catalog
	}
	return zhCNCatalog
}
