// Package linkfix rewrites intra-export HTML references so they keep
// working when notes are renamed and opened over the file:// protocol.
//
// Filenames produced by the filename package arrive here as opaque,
// already-safe path segments; this package only URL-encodes them and
// never re-sanitizes. Resource embedding degrades per reference: any
// failure leaves the original markup unmodified.
package linkfix
