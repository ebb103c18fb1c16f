// Copyright (c) 2026 ArtScope. All rights reserved.

package collection

import (
	"net/url"
	"strconv"
	"strings"
)

// # Domain Models

// Artwork is an object record as returned by GET /objects/{id}. Records are
// read-only once fetched.
type Artwork struct {
	ObjectID          int      `json:"objectID"`
	Title             string   `json:"title"`
	ArtistDisplayName string   `json:"artistDisplayName"`
	ArtistNationality string   `json:"artistNationality"`
	ObjectDate        string   `json:"objectDate"`
	ObjectBeginDate   int      `json:"objectBeginDate"`
	ObjectEndDate     int      `json:"objectEndDate"`
	Medium            string   `json:"medium"`
	Department        string   `json:"department"`
	Culture           string   `json:"culture"`
	Dimensions        string   `json:"dimensions"`
	CreditLine        string   `json:"creditLine"`
	PrimaryImage      string   `json:"primaryImage"`
	PrimaryImageSmall string   `json:"primaryImageSmall"`
	AdditionalImages  []string `json:"additionalImages"`
	ObjectURL         string   `json:"objectURL"`
	IsHighlight       bool     `json:"isHighlight"`
}

// HasPrimaryImage reports whether the record can be shown in the gallery.
func (a *Artwork) HasPrimaryImage() bool {
	return strings.TrimSpace(a.PrimaryImage) != ""
}

// DisplayTitle returns the title or a placeholder.
func (a *Artwork) DisplayTitle() string {
	return fallback(a.Title, "Untitled")
}

// DisplayArtist returns the artist name or a placeholder.
func (a *Artwork) DisplayArtist() string {
	return fallback(a.ArtistDisplayName, "Unknown Artist")
}

// DisplayDate returns the display date or a placeholder.
func (a *Artwork) DisplayDate() string {
	return fallback(a.ObjectDate, "Date unknown")
}

func fallback(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

// Department is one entry of GET /departments.
type Department struct {
	DepartmentID int    `json:"departmentId"`
	DisplayName  string `json:"displayName"`
}

// # Search

// SearchParams are the query parameters of GET /search. Nil pointers are omitted.
type SearchParams struct {
	Query        string
	HasImages    bool
	DepartmentID *int
	DateBegin    *int
	DateEnd      *int
}

// Values encodes the parameters for the upstream query string.
func (p SearchParams) Values() url.Values {
	values := url.Values{}
	if p.HasImages {
		values.Set("hasImages", "true")
	}
	if p.DepartmentID != nil {
		values.Set("departmentId", strconv.Itoa(*p.DepartmentID))
	}
	// The upstream only honours a date filter when both bounds are present.
	if p.DateBegin != nil && p.DateEnd != nil {
		values.Set("dateBegin", strconv.Itoa(*p.DateBegin))
		values.Set("dateEnd", strconv.Itoa(*p.DateEnd))
	}
	values.Set("q", p.Query)
	return values
}

type searchResponse struct {
	Total     int   `json:"total"`
	ObjectIDs []int `json:"objectIDs"`
}

type departmentsResponse struct {
	Departments []Department `json:"departments"`
}
