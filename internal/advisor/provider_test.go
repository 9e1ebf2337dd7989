package advisor

import (
	"strings"
	"testing"

	"github.com/ppiankov/yojana/internal/model"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		wantNil  bool
		wantErr  bool
		wantName string
	}{
		{name: "disabled", config: Config{}, wantNil: true},
		{name: "gemini", config: Config{Provider: "gemini", APIKey: "k"}, wantName: "gemini"},
		{name: "gemini alias", config: Config{Provider: "Google", APIKey: "k"}, wantName: "gemini"},
		{name: "openai", config: Config{Provider: "openai", APIKey: "k"}, wantName: "openai"},
		{name: "unknown", config: Config{Provider: "skynet"}, wantErr: true},
		{name: "gemini without key", config: Config{Provider: "gemini"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.wantNil {
				if p != nil {
					t.Fatalf("Expected nil provider, got %s", p.Name())
				}
				return
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name = %s, want %s", p.Name(), tt.wantName)
			}
		})
	}
}

func TestFilterLinks(t *testing.T) {
	links := []model.CitationLink{
		{Title: "PM-Kisan", URI: "https://pmkisan.gov.in/"},
		{Title: "Gov Source", URI: "#"},
		{Title: "Empty", URI: ""},
		{Title: "PMJAY", URI: "https://pmjay.gov.in/"},
	}

	got := FilterLinks(links)
	if len(got) != 2 {
		t.Fatalf("Expected 2 links after filtering, got %d", len(got))
	}
	if got[0].URI != "https://pmkisan.gov.in/" || got[1].URI != "https://pmjay.gov.in/" {
		t.Errorf("Filtering must preserve order: %v", got)
	}

	if got := FilterLinks(nil); len(got) != 0 {
		t.Errorf("Expected empty result for nil input, got %v", got)
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	req := Request{
		Query:    "q",
		Language: model.LangHindi,
		Profile:  map[string]string{"occupation": "farmer", "age": "42"},
	}

	prompt := BuildSystemPrompt(req)
	if !strings.Contains(prompt, "Respond in Hindi.") {
		t.Error("Expected language instruction")
	}
	// Sorted keys keep the prompt deterministic
	if !strings.Contains(prompt, "age=42, occupation=farmer") {
		t.Errorf("Expected sorted profile context, got: %s", prompt)
	}

	noProfile := BuildSystemPrompt(Request{Query: "q", Language: model.LangEnglish})
	if strings.Contains(noProfile, "User Profile Context") {
		t.Error("Empty profile must not add a context line")
	}
}
