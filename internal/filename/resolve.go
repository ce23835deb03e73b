package filename

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// maxVersionAttempts bounds the sequential -vN suffix scheme. Past this
// many collisions the resolver switches to a title-digest suffix and, if
// even that name is taken, resumes versioning on top of it.
const maxVersionAttempts = 50

// suffixCutset holds characters stripped from a truncated name part
// before a version or hash suffix is appended.
const suffixCutset = "-_ ."

// resolveUnique produces a sanitized filename for title+extension that is
// not present (case-folded) in issued. Collisions get -v2, -v3, ...
// version suffixes; a collision storm falls back to a 6-hex-character
// digest of the original title, itself collision-checked, trading
// readability for a hard uniqueness guarantee.
func resolveUnique(title, extension string, issued map[string]struct{}, maxBaseLen int, useSpaces bool) string {
	tokens := Tokenize(title)

	var base string
	if len(tokens) == 0 {
		base = FallbackName
	} else {
		separator := "-"
		if useSpaces {
			separator = " "
		}
		base = Shorten(tokens, maxBaseLen, separator)
	}

	base = SanitizeComponent(base, maxBaseLen, useSpaces)
	candidate := SanitizeComponent(base+extension, MaxComponent, useSpaces)

	original := candidate
	counter := 2
	hashed := false
	for {
		if _, taken := issued[strings.ToLower(candidate)]; !taken {
			return candidate
		}

		namePart, extPart := splitLastDot(original)

		if !hashed && counter >= maxVersionAttempts {
			// Version suffixes are exhausted; restart on a digest name.
			// If that name is already issued too, versioning resumes on
			// top of it with no ceiling. Every candidate from here on
			// carries a distinct suffix and the issued set is finite,
			// so the loop terminates.
			hashSuffix := "-x" + titleDigest(title)
			limit := MaxComponent - len(extPart) - len(hashSuffix)
			original = strings.TrimRight(clampLeft(namePart, limit), suffixCutset) + hashSuffix + extPart
			candidate = original
			counter = 2
			hashed = true
			continue
		}

		versionSuffix := fmt.Sprintf("-v%d", counter)
		name := namePart + versionSuffix
		if limit := MaxComponent - len(extPart) - len(versionSuffix); len(name) > limit {
			name = strings.TrimRight(clampLeft(namePart, limit), suffixCutset) + versionSuffix
		}
		candidate = name + extPart
		counter++
	}
}

// splitLastDot splits a filename into name and extension parts at the
// last dot; the extension part keeps the dot.
func splitLastDot(name string) (string, string) {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}

// titleDigest returns a 6-hex-character digest of the title, stable
// across runs so repeated exports of the same corpus converge.
func titleDigest(title string) string {
	sum := sha256.Sum256([]byte(title))
	return hex.EncodeToString(sum[:3])
}
