// Package filename turns free-text note titles into safe, unique,
// cross-platform filenames.
//
// The pipeline has four layers, composed top-down:
//   - Tokenize splits a title into word tokens.
//   - Shorten applies an ordered cascade of lossy strategies (stopword
//     dropping, token abbreviation, right-side dropping, hard truncation)
//     until the joined result fits a length budget.
//   - SanitizeComponent strips characters illegal on common filesystems,
//     guards Windows reserved device names, and enforces a hard length
//     ceiling independent of the shortener.
//   - Manager resolves collisions against the set of names already issued
//     in the current session, appending -v2, -v3, ... suffixes and falling
//     back to a short content hash after repeated collisions.
//
// All functions are pure; only Manager carries state, scoped to one
// export run.
package filename
