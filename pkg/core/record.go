// Record is the central entity of the domain.
package core

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Metadata holds the frontmatter fields of a content file.
// Title, PublishedAt and Summary are required; a record missing any of
// them is rejected at parse time. Unrecognized frontmatter keys are kept
// in Extra rather than dropped, so the field set stays open.
type Metadata struct {
	Title       string
	PublishedAt string
	Summary     string
	Image       string
	Extra       map[string]string
}

// MissingFields returns the names of required fields that are absent or empty.
func (m Metadata) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(m.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(m.PublishedAt) == "" {
		missing = append(missing, "publishedAt")
	}
	if strings.TrimSpace(m.Summary) == "" {
		missing = append(missing, "summary")
	}
	return missing
}

// Record represents a single content item loaded from disk.
// Slug is derived from the source filename with its extension stripped.
// Uniqueness of slugs across a directory is assumed, not enforced; on
// collision the first file in enumeration order wins.
type Record struct {
	Metadata Metadata
	Slug     string
	Content  string
}

// ParseDate parses a publishedAt value. Date-only input (no time
// component) gets a midnight marker appended first, so that day-level
// granularity compares correctly against the current moment.
func ParseDate(text string) (time.Time, error) {
	normalized := text
	if !strings.Contains(normalized, "T") {
		normalized += "T00:00:00"
	}

	layouts := []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", text)
}

// SortByDate returns a copy of records ordered by PublishedAt descending
// (most recent first). The sort is stable: records sharing a date keep
// their original enumeration order. Records whose date does not parse
// sort last.
func SortByDate(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		ti, errI := ParseDate(sorted[i].Metadata.PublishedAt)
		tj, errJ := ParseDate(sorted[j].Metadata.PublishedAt)
		if errI != nil || errJ != nil {
			return errI == nil && errJ != nil
		}
		return ti.After(tj)
	})

	return sorted
}

// EventType represents the type of change in the content directory.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a content file.
type Event struct {
	Type      EventType
	Slug      string
	Timestamp int64 // Unix timestamp
}
