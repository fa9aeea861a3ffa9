package textmetrics

import (
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"simple", "Call the insurance company", []string{"call", "the", "insurance", "company"}},
		{"punctuation", "urgent, ASAP!", []string{"urgent", "asap"}},
		{"empty", "", nil},
		{"symbols only", "!!!###", nil},
		{"underscores kept", "two_minute rule", []string{"two_minute", "rule"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSentenceCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"quick call to mom", 1},
		{"Do it. Then rest.", 2},
		{"Really?! Yes...", 2},
		{"", 0},
	}
	for _, tt := range tests {
		if got := SentenceCount(tt.text); got != tt.want {
			t.Errorf("SentenceCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestSyllableCount(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"quick", 1},
		{"mom", 1},
		{"insurance", 3},
		{"make", 1},
		{"table", 2},
		{"a", 1},
		{"", 0},
		{"rhythm", 1},
	}
	for _, tt := range tests {
		if got := SyllableCount(tt.word); got != tt.want {
			t.Errorf("SyllableCount(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestFleschReadingEase(t *testing.T) {
	// Short monosyllabic phrase reads as very easy.
	if got := FleschReadingEase("quick call to mom"); got <= 60 {
		t.Errorf("FleschReadingEase(simple) = %.1f, want > 60", got)
	}

	// Dense multi-syllable jargon reads as hard.
	hard := "implement comprehensive enterprise system architecture"
	if got := FleschReadingEase(hard); got >= 50 {
		t.Errorf("FleschReadingEase(jargon) = %.1f, want < 50", got)
	}

	if got := FleschReadingEase(""); got != 0 {
		t.Errorf("FleschReadingEase(empty) = %.1f, want 0", got)
	}
}

func TestFleschReadingEaseLongInput(t *testing.T) {
	// Pathological repeated input must not panic and must return a finite score.
	long := strings.Repeat("word ", 1000)
	got := FleschReadingEase(long)
	if got != got { // NaN check
		t.Fatalf("FleschReadingEase(long) = NaN")
	}
}
