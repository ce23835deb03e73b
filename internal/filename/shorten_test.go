package filename

import (
	"strings"
	"testing"
)

func TestShortenNoOpWhenFits(t *testing.T) {
	tokens := []string{"The", "Quick", "Brown", "Fox"}
	got := Shorten(tokens, 50, " ")
	if got != "The Quick Brown Fox" {
		t.Errorf("Shorten() = %q, want verbatim join", got)
	}
}

func TestShortenDropsStopwordsFirst(t *testing.T) {
	tokens := []string{"The", "Annual", "Report", "of", "the", "Department"}
	got := Shorten(tokens, 26, " ")
	if got != "Annual Report Department" {
		t.Errorf("Shorten() = %q, want %q", got, "Annual Report Department")
	}
}

func TestShortenStopsAtFirstFit(t *testing.T) {
	// "of" (rightmost non-informative) is dropped first; the join then
	// fits, so "The" must survive.
	tokens := []string{"The", "Summary", "of", "Things"}
	got := Shorten(tokens, 18, " ")
	if got != "The Summary Things" {
		t.Errorf("Shorten() = %q, want %q", got, "The Summary Things")
	}
}

func TestShortenCascadeScenario(t *testing.T) {
	title := "The Quick Brown Fox Jumps Over The Lazy Dog and a Very Long " +
		"Supplementary Explanatory Subtitle About Nothing In Particular"
	got := Shorten(Tokenize(title), 40, " ")

	if len(got) > 40 {
		t.Fatalf("Shorten() length = %d, want <= 40 (%q)", len(got), got)
	}
	if got != "Quick Brown Fox Jumps Lazy Dog Long" {
		t.Errorf("Shorten() = %q, want %q", got, "Quick Brown Fox Jumps Lazy Dog Long")
	}
	for _, stop := range []string{"The", "Over", "About"} {
		if strings.Contains(got, stop) {
			t.Errorf("Shorten() kept stopword %q in %q", stop, got)
		}
	}
}

func TestShortenAbbreviatesBeforeDropping(t *testing.T) {
	tokens := []string{"Project", "Supplementary"}
	got := Shorten(tokens, 18, " ")
	if got != "Project Spplmntry" {
		t.Errorf("Shorten() = %q, want %q", got, "Project Spplmntry")
	}
}

func TestShortenKeepsUnhelpfulAbbreviation(t *testing.T) {
	// A long pure-digit token abbreviates to itself, so the substitution
	// must be skipped and the token dropped instead.
	tokens := []string{"Invoice", "123456789012345"}
	got := Shorten(tokens, 10, " ")
	if got != "Invoice" {
		t.Errorf("Shorten() = %q, want %q", got, "Invoice")
	}
}

func TestShortenNeverDropsFirstToken(t *testing.T) {
	tokens := []string{"Anchored", "Second", "Third"}
	got := Shorten(tokens, 8, " ")
	if got != "Anchored" {
		t.Errorf("Shorten() = %q, want first token kept", got)
	}
}

func TestShortenHardTruncate(t *testing.T) {
	tokens := []string{"bcdfghjklmnpqrstvwxyz"}
	got := Shorten(tokens, 5, " ")
	if len(got) > 5 {
		t.Errorf("Shorten() length = %d, want <= 5", len(got))
	}
	if got != "bcdfg" {
		t.Errorf("Shorten() = %q, want %q", got, "bcdfg")
	}
}

func TestShortenTrailingJunkStripped(t *testing.T) {
	got := Shorten([]string{"alpha", "beta"}, 6, " ")
	if strings.ContainsAny(got[len(got)-1:], "-_ .") {
		t.Errorf("Shorten() = %q, trailing separator not stripped", got)
	}
}

func TestShortenEmptyTokens(t *testing.T) {
	if got := Shorten(nil, 40, " "); got != "" {
		t.Errorf("Shorten(nil) = %q, want empty", got)
	}
}
