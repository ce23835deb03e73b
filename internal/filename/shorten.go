package filename

import (
	"slices"
	"strings"
)

// Shorten joins tokens with separator and, only when the join exceeds
// maxLength, applies lossy strategies in strict order, re-testing the fit
// after every single edit and returning as soon as the join fits:
//
//  1. Drop non-informative tokens, scanning right to left.
//  2. Abbreviate tokens longer than 10 characters, scanning right to
//     left. An abbreviation is applied only when it is strictly shorter
//     than the original token, so every substitution shrinks the join.
//  3. Drop remaining tokens from the right, one at a time, down to one
//     token. The first token is never dropped; it anchors the meaning.
//  4. Hard truncate the join to maxLength and strip trailing separator,
//     hyphen, underscore, space, and dot characters.
//
// The right-to-left bias assumes earlier words in a title carry more
// topical weight. Each strategy consumes a strictly decreasing resource,
// so the cascade always terminates with a result of at most maxLength.
func Shorten(tokens []string, maxLength int, separator string) string {
	if maxLength < 0 {
		maxLength = 0
	}

	joined := strings.Join(tokens, separator)
	if len(joined) <= maxLength {
		return joined
	}

	work := slices.Clone(tokens)

	for i := len(work) - 1; i >= 0; i-- {
		if IsInformative(work[i]) {
			continue
		}
		work = slices.Delete(work, i, i+1)
		if joined = strings.Join(work, separator); len(joined) <= maxLength {
			return joined
		}
	}

	for i := len(work) - 1; i >= 0; i-- {
		if len(work[i]) <= abbrevThreshold {
			continue
		}
		abbr := AbbreviateToken(work[i], abbrevThreshold)
		if len(abbr) >= len(work[i]) {
			continue
		}
		work[i] = abbr
		if joined = strings.Join(work, separator); len(joined) <= maxLength {
			return joined
		}
	}

	for len(work) > 1 {
		work = work[:len(work)-1]
		if joined = strings.Join(work, separator); len(joined) <= maxLength {
			return joined
		}
	}

	joined = strings.Join(work, separator)
	if len(joined) > maxLength {
		joined = strings.TrimRight(joined[:maxLength], separator+"-_ .")
	}
	return joined
}
