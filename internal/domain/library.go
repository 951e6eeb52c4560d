// Package domain defines the entities of the flower catalog and person roster.
package domain

// LibraryEntry is a named entry in the flower catalog.
// The catalog is reference data only; owned flowers are never joined against it.
type LibraryEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"` // Unique, trimmed, case-sensitive
}
