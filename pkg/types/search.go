// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for gbooks: catalog records
// decoded from the Google Books volumes API, the choices derived from them,
// and the configuration blocks for each component.
package types

// CatalogRecord is the subset of a volume's volumeInfo that gbooks asks the
// catalog for. Every field is optional upstream; absent fields decode to
// their zero value.
type CatalogRecord struct {
	// Title is the volume title. A missing title is the empty string.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Authors lists the volume authors in catalog order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Publisher is the publishing house, if the catalog knows it.
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
}

// Choice is the display and identity triple derived from one CatalogRecord.
type Choice struct {
	// Display is the full label: title, authors and publisher.
	Display string `json:"display" yaml:"display"`

	// Value is the identity string stored in the reading list. It carries the
	// title and authors but not the publisher, so two printings of the same
	// book by different publishers are one reading-list entry.
	Value string `json:"value" yaml:"value"`

	// ShortLabel is the bare title.
	ShortLabel string `json:"short_label" yaml:"short_label"`
}

// VolumesResponse is the JSON body of a successful volumes query.
type VolumesResponse struct {
	Items []Volume `json:"items"`
}

// Volume wraps a single catalog item. VolumeInfo is nil when the catalog
// omits it.
type Volume struct {
	VolumeInfo *CatalogRecord `json:"volumeInfo"`
}

// Record returns the volume's record, or the zero record when volumeInfo is
// absent.
func (v Volume) Record() CatalogRecord {
	if v.VolumeInfo == nil {
		return CatalogRecord{}
	}
	return *v.VolumeInfo
}

// ErrorResponse is the JSON body the catalog returns with a non-200 status.
type ErrorResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Message returns the upstream error message, or "" when none was given.
func (e ErrorResponse) Message() string {
	if e.Error == nil {
		return ""
	}
	return e.Error.Message
}
