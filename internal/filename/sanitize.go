package filename

import (
	"regexp"
	"strings"
)

const (
	// MaxComponent is the hard ceiling for a single path component on
	// common filesystems.
	MaxComponent = 255

	// DefaultMaxBaseLen is the default length budget for the name portion
	// before the extension.
	DefaultMaxBaseLen = 150

	// FallbackName is issued when a title produces no usable content.
	FallbackName = "unnamed"

	placeholder = "_"
)

// forbiddenPattern matches characters that are illegal in filenames on at
// least one of Windows, macOS, or Linux, plus characters that break
// markdown links, and all C0 control characters.
var forbiddenPattern = regexp.MustCompile("[<>:\"/\\\\|?*\\[\\]^#%\x00-\x1f]")

var (
	placeholderRunPattern = regexp.MustCompile(placeholder + `+`)
	spaceRunPattern       = regexp.MustCompile(` +`)
)

// windowsReserved holds device names that cannot be used as a filename
// stem on Windows, compared case-insensitively.
var windowsReserved = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// SanitizeComponent makes text legal as a single path component: forbidden
// characters are replaced, trailing spaces and dots stripped, Windows
// reserved device names broken, and the result truncated to maxLength with
// any extension suffix preserved intact. Empty input and input that
// sanitizes away entirely both map to "unnamed". The function is
// idempotent: sanitizing a sanitized component is a no-op.
func SanitizeComponent(text string, maxLength int, allowSpaces bool) string {
	if text == "" {
		return FallbackName
	}

	separator := placeholder
	if allowSpaces {
		separator = " "
	}

	name := forbiddenPattern.ReplaceAllString(text, placeholder)
	// Colon is already in the forbidden set; the second pass keeps the
	// guarantee intact if the pattern above ever drifts.
	name = strings.ReplaceAll(name, ":", placeholder)
	name = strings.TrimRight(name, " .")
	name = placeholderRunPattern.ReplaceAllString(name, placeholder)

	if allowSpaces {
		name = strings.ReplaceAll(name, placeholder, separator)
		name = spaceRunPattern.ReplaceAllString(name, " ")
		name = strings.TrimSpace(name)
	}

	// A reserved stem followed by any extension is still reserved, so the
	// guard compares the portion before the first dot and must run before
	// length trimming.
	stem, _, _ := strings.Cut(name, ".")
	if _, reserved := windowsReserved[strings.ToUpper(stem)]; reserved {
		name = separator + name
	}

	if len(name) > maxLength {
		// Truncate only the stem so the suffix survives intact, and
		// re-strip the cut edge so no trailing space or dot reappears.
		// A suffix that alone overruns the budget gets no protection;
		// the whole name is cut instead.
		idx := strings.LastIndexByte(name, '.')
		if stemBudget := maxLength - (len(name) - idx); idx >= 0 && stemBudget >= 0 {
			stem := clampLeft(name[:idx], stemBudget)
			name = strings.TrimRight(stem, " .") + name[idx:]
		} else {
			name = strings.TrimRight(clampLeft(name, maxLength), " .")
		}
	}

	if name == "" {
		return FallbackName
	}
	return name
}

// clampLeft returns at most n leading bytes of s, tolerating n past either
// bound.
func clampLeft(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n >= len(s) {
		return s
	}
	return s[:n]
}
