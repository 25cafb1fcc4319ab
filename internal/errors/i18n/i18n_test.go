package i18n

import (
	"strings"
	"testing"
)

func TestFormatExecutesTemplateMetadata(t *testing.T) {
	catalog := GetCatalog("zh-CN")
	msg := catalog.Format(CodeCharacterDuplicate, map[string]string{"CharacterID": "dingzhen"})
	if !strings.Contains(msg, "dingzhen") {
		t.Fatalf("expected character id in message, got %q", msg)
	}
}

func TestFormatUnknownCodeFallsBackToGeneric(t *testing.T) {
	catalog := GetCatalog("en-US")
	msg := catalog.Format("NO_SUCH_CODE", nil)
	if msg != catalog.messages[CodeUnknown] {
		t.Fatalf("expected generic fallback, got %q", msg)
	}
}

func TestGetCatalogDefaultsToChinese(t *testing.T) {
	catalog := GetCatalog("pt-BR")
	if catalog.Locale() != "zh-CN" {
		t.Fatalf("expected zh-CN fallback, got %q", catalog.Locale())
	}
}

func TestCatalogsCoverSameCodes(t *testing.T) {
	for code := range zhCNCatalog.messages {
		if _, ok := enUSCatalog.messages[code]; !ok {
			t.Fatalf("en-US catalog missing code %s", code)
		}
	}
	for code := range enUSCatalog.messages {
		if _, ok := zhCNCatalog.messages[code]; !ok {
			t.Fatalf("zh-CN catalog missing code %s", code)
		}
	}
}
