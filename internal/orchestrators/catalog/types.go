package catalog

import (
	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
)

// ListEntriesInput defines the request for listing one reference table
type ListEntriesInput struct {
	Kind string
}

// ListEntriesOutput defines the response for listing a table
type ListEntriesOutput struct {
	Kind    paranormal.CatalogKind
	Entries []paranormal.CatalogEntry
}

// GetEntryInput defines the request for one entry
type GetEntryInput struct {
	Kind string
	Name string
}

// GetEntryOutput defines the response for one entry
type GetEntryOutput struct {
	Kind  paranormal.CatalogKind
	Entry paranormal.CatalogEntry
}

// PutEntryInput creates or replaces an entry
type PutEntryInput struct {
	Kind  string
	Entry paranormal.CatalogEntry
}

// PutEntryOutput defines the response for storing an entry
type PutEntryOutput struct {
	Kind  paranormal.CatalogKind
	Entry paranormal.CatalogEntry
}

// DeleteEntryInput defines the request for removing an entry
type DeleteEntryInput struct {
	Kind string
	Name string
}

// DeleteEntryOutput defines the response for removing an entry
type DeleteEntryOutput struct{}

// SeedInput loads the YAML seed files in Dir
type SeedInput struct {
	Dir string
	// Replace clears each table that has a seed file before loading it
	Replace bool
}

// SeedOutput reports how many entries each table received
type SeedOutput struct {
	Counts map[paranormal.CatalogKind]int
}
