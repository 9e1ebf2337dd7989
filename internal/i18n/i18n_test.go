package i18n

import (
	"strings"
	"testing"

	"github.com/ppiankov/yojana/internal/model"
)

func TestT_Translated(t *testing.T) {
	msg := T(model.LangHindi, "search.category")
	if msg != "श्रेणी" {
		t.Errorf("T(Hindi, search.category) = %q", msg)
	}
}

func TestT_FallsBackToEnglish(t *testing.T) {
	// Marathi has no chat strings; Klingon has no table at all
	for _, lang := range []string{model.LangMarathi, "Klingon"} {
		got := T(lang, "chat.goodbye")
		want := T(model.LangEnglish, "chat.goodbye")
		if got != want {
			t.Errorf("T(%s, chat.goodbye) = %q, want English %q", lang, got, want)
		}
	}
}

func TestT_UnknownKey(t *testing.T) {
	if got := T(model.LangEnglish, "no.such.key"); got != "no.such.key" {
		t.Errorf("unknown key should echo, got %q", got)
	}
}

func TestSprintf(t *testing.T) {
	got := Sprintf(model.LangEnglish, "search.header", 3)
	if !strings.Contains(got, "3") {
		t.Errorf("header should carry the count, got %q", got)
	}
}

func TestEveryLanguageEntryHasEnglishBase(t *testing.T) {
	base := messages[model.LangEnglish]
	for lang, set := range messages {
		if lang == model.LangEnglish {
			continue
		}
		for key := range set {
			if _, ok := base[key]; !ok {
				t.Errorf("%s defines %q with no English base", lang, key)
			}
		}
	}
}
