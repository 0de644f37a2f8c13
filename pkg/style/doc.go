// Package style defines the formatting options consumed by the SQL formatter.
//
// A Style is a plain value: every field maps to exactly one emission rule and
// there is no unset state. The formatter copies the Style it is given, so one
// value may be shared freely between goroutines and format calls.
//
// Two presets are provided as ready-made values:
//
//	style.Default // tabs, UPPER keywords, leading commas, forced AS, joins on own line
//	style.Compact // two spaces, UPPER keywords, trailing commas, no forced AS, joins inline
//
// Named presets can be kept in a Catalog, which starts out holding "default"
// and "compact":
//
//	catalog := style.NewCatalog()
//	catalog.Save("team", custom)
//	s, ok := catalog.Get("TEAM")
package style
