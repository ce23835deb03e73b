package filename

import (
	"regexp"
	"strings"
)

// tokenPattern matches maximal runs of ASCII letters, digits, and
// apostrophes. Apostrophes are included so contractions ("it's") stay
// whole; leading and trailing apostrophes are trimmed afterwards.
var tokenPattern = regexp.MustCompile(`['A-Za-z0-9]+`)

// stopwords are English function words that carry little topical weight
// and are the first candidates for removal when a name runs long.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "if": {},
	"then": {}, "else": {}, "when": {}, "while": {}, "for": {}, "to": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "by": {}, "from": {},
	"with": {}, "about": {}, "into": {}, "through": {}, "during": {},
	"before": {}, "after": {}, "above": {}, "below": {}, "over": {},
	"under": {}, "again": {}, "further": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "do": {}, "does": {}, "did": {}, "doing": {},
	"have": {}, "has": {}, "had": {}, "having": {},
	"it": {}, "its": {}, "it's": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "as": {}, "than": {}, "too": {}, "very": {}, "can": {},
	"will": {}, "just": {}, "not": {}, "no": {},
	"you": {}, "your": {}, "yours": {}, "we": {}, "our": {}, "ours": {},
}

// noiseTokens are web and document boilerplate words that show up in
// exported titles without identifying the note.
var noiseTokens = map[string]struct{}{
	"index": {}, "default": {}, "home": {}, "page": {},
	"http": {}, "https": {}, "www": {}, "html": {}, "htm": {},
}

// Tokenize extracts word tokens from a title in left-to-right order.
// Tokens preserve original case; everything outside the token character
// class is a separator and is discarded. A title with no qualifying runs
// yields an empty slice, which callers treat as the literal base "unnamed".
func Tokenize(title string) []string {
	raw := tokenPattern.FindAllString(title, -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.Trim(tok, "'")
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// IsInformative reports whether a token carries topical content. Stopwords
// and noise tokens classify as non-informative; everything else is
// informative. Classification is total and case-insensitive.
func IsInformative(token string) bool {
	folded := strings.ToLower(token)
	if _, ok := stopwords[folded]; ok {
		return false
	}
	if _, ok := noiseTokens[folded]; ok {
		return false
	}
	return true
}
