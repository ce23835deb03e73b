// Package export drives one export run: it walks a directory of exported
// notes, derives a title per note, asks the filename manager for a safe
// unique output name, and copies the notes across with intra-export
// links rewritten to the new names.
//
// A run holds an exclusive lock on the output directory, so two
// concurrent exports into the same destination cannot interleave their
// name spaces.
package export
