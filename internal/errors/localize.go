package errors

import (
	"errors"

	"github.com/mapleparty/amoria/internal/errors/i18n"
	platformerrors "github.com/mapleparty/amoria/internal/platform/errors"
)

// DefaultLocale is the fallback locale for error messages.
const DefaultLocale = "zh-CN"

// Localize renders a user-facing message for err in the given locale,
// defaulting to zh-CN when the locale is empty. Non-domain errors render
// as a generic failure message so internals never leak into chat replies.
func Localize(err error, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}
	catalog := i18n.GetCatalog(locale)

	var appErr *platformerrors.Error
	if errors.As(err, &appErr) {
		return catalog.Format(string(appErr.Code), appErr.Metadata)
	}
	return catalog.Format(i18n.CodeUnknown, nil)
}

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not a domain error.
func GetCode(err error) Code {
	var e *platformerrors.Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}
