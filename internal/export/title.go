package export

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeriveTitle recovers a human-readable title from an exported note's
// source path: the base name minus extension, with separator characters
// collapsed to spaces. All-lowercase names are title-cased; names that
// already carry uppercase keep their casing.
func DeriveTitle(sourcePath string) string {
	if sourcePath == "" {
		return "Untitled Note"
	}
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '\'':
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		default:
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}

	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Untitled Note"
	}
	if title == strings.ToLower(title) {
		title = cases.Title(language.Und).String(title)
	}
	return title
}
