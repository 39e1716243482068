package v1alpha1

import "encoding/json"

// CatalogEntry is one reference-table row. Entry holds the kind-specific
// JSON document (skill, weapon, ritual ...).
type CatalogEntry struct {
	Kind  string          `json:"kind"`
	Name  string          `json:"name"`
	Entry json.RawMessage `json:"entry"`
}

// ListEntriesRequest lists a table
type ListEntriesRequest struct {
	Kind string `json:"kind"`
}

// ListEntriesResponse returns a table ordered by name
type ListEntriesResponse struct {
	Entries []*CatalogEntry `json:"entries"`
}

// GetEntryRequest fetches one row
type GetEntryRequest struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// GetEntryResponse returns one row
type GetEntryResponse struct {
	Entry *CatalogEntry `json:"entry"`
}

// PutEntryRequest creates or replaces a row
type PutEntryRequest struct {
	Kind  string          `json:"kind"`
	Entry json.RawMessage `json:"entry"`
}

// PutEntryResponse returns the stored row
type PutEntryResponse struct {
	Entry *CatalogEntry `json:"entry"`
}

// DeleteEntryRequest removes a row
type DeleteEntryRequest struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// DeleteEntryResponse confirms the removal
type DeleteEntryResponse struct {
	Message string `json:"message"`
}

// SeedCatalogRequest reloads the server's seed files
type SeedCatalogRequest struct {
	Replace bool `json:"replace,omitempty"`
}

// SeedCatalogResponse reports how many rows each table received
type SeedCatalogResponse struct {
	Counts map[string]int32 `json:"counts"`
}
