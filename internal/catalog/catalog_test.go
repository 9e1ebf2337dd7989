package catalog

import (
	"testing"

	"github.com/ppiankov/yojana/internal/model"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Len() == 0 {
		t.Fatal("Expected non-empty catalog")
	}

	// Every scheme must carry the English fallback entries
	for _, s := range c.Schemes() {
		if s.ID == "" {
			t.Error("Scheme with empty id")
		}
		if s.Names[model.LangEnglish] == "" {
			t.Errorf("Scheme %s missing English name", s.ID)
		}
		if s.Descriptions[model.LangEnglish] == "" {
			t.Errorf("Scheme %s missing English description", s.ID)
		}
		if s.ApplyLink == "" {
			t.Errorf("Scheme %s missing apply link", s.ID)
		}
	}
}

func TestByID(t *testing.T) {
	c := MustLoad()

	s := c.ByID("pm-kisan")
	if s == nil {
		t.Fatal("Expected pm-kisan in catalog")
	}
	if s.Category != "Agriculture" {
		t.Errorf("Unexpected category: %s", s.Category)
	}

	if c.ByID("no-such-scheme") != nil {
		t.Error("Expected nil for unknown id")
	}
}

func TestLocalizedFallback(t *testing.T) {
	c := MustLoad()
	s := c.ByID("pm-kisan")

	tests := []struct {
		lang string
		want string
	}{
		{model.LangEnglish, "PM-Kisan Samman Nidhi"},
		{model.LangHindi, "पीएम-किसान सम्मान निधि"},
		// Unsupported language falls back to English
		{"Klingon", "PM-Kisan Samman Nidhi"},
		{model.LangTamil, "PM-Kisan Samman Nidhi"},
	}

	for _, tt := range tests {
		if got := Name(s, tt.lang); got != tt.want {
			t.Errorf("Name(%s) = %q, want %q", tt.lang, got, tt.want)
		}
	}

	if Description(s, "Klingon") != s.Descriptions[model.LangEnglish] {
		t.Error("Description fallback to English failed")
	}
}

func TestFind(t *testing.T) {
	c := MustLoad()

	if s := c.Find("mudra"); s == nil || s.ID != "pm-mudra" {
		t.Errorf("Find(mudra) = %v, want pm-mudra", s)
	}
	if s := c.Find("सुकन्या"); s == nil || s.ID != "ssy" {
		t.Errorf("Find on Hindi name failed: %v", s)
	}
	if s := c.Find("definitely not a scheme"); s != nil {
		t.Errorf("Expected nil, got %s", s.ID)
	}
	if s := c.Find(""); s != nil {
		t.Errorf("Expected nil for empty name, got %s", s.ID)
	}
}
