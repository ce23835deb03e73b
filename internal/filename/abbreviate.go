package filename

import "strings"

// abbrevThreshold is the token length above which the shortening cascade
// attempts abbreviation.
const abbrevThreshold = 10

// AbbreviateToken compresses a single token to at most maxLen characters.
// The strategies run in order, first applicable wins:
//
//  1. Pure-digit tokens are returned unchanged regardless of length.
//  2. Tokens with two or more uppercase letters collapse to their
//     uppercase initials (camel-case signal).
//  3. Tokens with underscore or hyphen separators collapse to the first
//     character of each part.
//  4. Interior vowels are removed and the result cut to maxLen, keeping
//     the first and last character intact.
//
// Acronym-style strategies are preferred because they keep recognizable
// word-boundary structure; blind truncation is the last resort.
func AbbreviateToken(token string, maxLen int) string {
	if len(token) < 2 || isAllDigits(token) {
		return token
	}
	if len(token) <= maxLen {
		return token
	}

	if caps := upperLetters(token); len(caps) >= 2 && len(caps) <= maxLen {
		return caps
	}

	if parts := splitSeparators(token); len(parts) > 1 {
		var initials strings.Builder
		for _, p := range parts {
			if p != "" {
				initials.WriteByte(p[0])
			}
		}
		if n := initials.Len(); n >= 2 && n <= maxLen {
			return initials.String()
		}
	}

	core := strings.Map(dropVowel, token[1:len(token)-1])
	candidate := token[:1] + core + token[len(token)-1:]
	if len(candidate) > maxLen {
		candidate = candidate[:maxLen]
	}
	if len(candidate) < 3 && len(token) >= 3 {
		candidate = token[:maxLen]
	}
	return candidate
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func upperLetters(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func splitSeparators(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})
}

func dropVowel(r rune) rune {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return -1
	}
	return r
}
