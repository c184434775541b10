package normalize

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "empty string",
			raw:  "",
			want: "",
		},
		{
			name: "lowercases text",
			raw:  "Ça commence BIEN",
			want: "ça commence bien",
		},
		{
			name: "french accented capitals",
			raw:  "ÉQUIPE Élue À Noël",
			want: "équipe élue à noël",
		},
		{
			name: "trims surrounding whitespace",
			raw:  "  bonsoir  ",
			want: "bonsoir",
		},
		{
			name: "trims trailing ellipsis run",
			raw:  "il arrive…",
			want: "il arrive",
		},
		{
			name: "trims trailing dots",
			raw:  "on verra bien...",
			want: "on verra bien",
		},
		{
			name: "keeps interior ellipsis",
			raw:  "hein… oui",
			want: "hein… oui",
		},
		{
			name: "strips emoji",
			raw:  "bravo 👏👏 superbe",
			want: "bravo superbe",
		},
		{
			name: "strips emoji sequences with selectors",
			raw:  "génial ❤️",
			want: "génial",
		},
		{
			name: "drops digit-bearing tokens",
			raw:  "rendez-vous le j10 a 20h30",
			want: "rendez-vous le a",
		},
		{
			name: "drops url tokens carrying digits",
			raw:  "regarde https://t.co/2ty demain",
			want: "regarde demain",
		},
		{
			name: "collapses whitespace runs",
			raw:  "un\t\tpeu   d'air",
			want: "un peu d'air",
		},
		{
			name: "emoji-only document",
			raw:  "😀🎉",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Ça commence BIEN 👍 #TheVoice…",
		"@user RT quelle SOIRÉE !!! 😀",
		"score final 3 a 2 ...",
		"   \t  ",
		"hein… oui...",
	}

	for _, raw := range inputs {
		once := Normalize(raw)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}

func TestNormalizeLanguage(t *testing.T) {
	// casing is language-aware; English rules still lower accents
	n := New(language.English)
	if got := n.Normalize("HELLO World"); got != "hello world" {
		t.Errorf("Normalize() = %q, want %q", got, "hello world")
	}
}

func TestIsEmoji(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{name: "grinning face", r: '😀', want: true},
		{name: "clapping hands", r: '👏', want: true},
		{name: "red heart", r: '❤', want: true},
		{name: "star", r: '⭐', want: true},
		{name: "regional indicator", r: '🇫', want: true},
		{name: "latin letter", r: 'a', want: false},
		{name: "accented letter", r: 'é', want: false},
		{name: "digit", r: '7', want: false},
		{name: "punctuation", r: '!', want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmoji(tt.r); got != tt.want {
				t.Errorf("IsEmoji(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}
