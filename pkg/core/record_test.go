package core

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("Date Only Gets Midnight", func(t *testing.T) {
		got, err := ParseDate("2023-01-01")
		if err != nil {
			t.Fatalf("ParseDate failed: %v", err)
		}
		want := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("Date Time Kept", func(t *testing.T) {
		got, err := ParseDate("2023-01-01T15:30:00")
		if err != nil {
			t.Fatalf("ParseDate failed: %v", err)
		}
		if got.Hour() != 15 || got.Minute() != 30 {
			t.Errorf("time component lost: %v", got)
		}
	})

	t.Run("RFC3339 Accepted", func(t *testing.T) {
		if _, err := ParseDate("2023-01-01T15:30:00Z"); err != nil {
			t.Errorf("ParseDate failed: %v", err)
		}
	})

	t.Run("Garbage Rejected", func(t *testing.T) {
		if _, err := ParseDate("not-a-date"); err == nil {
			t.Error("expected error for invalid date")
		}
	})
}

func TestSortByDate(t *testing.T) {
	rec := func(slug, date string) Record {
		return Record{
			Slug:     slug,
			Metadata: Metadata{Title: slug, PublishedAt: date, Summary: slug},
		}
	}

	t.Run("Descending Stable On Ties", func(t *testing.T) {
		input := []Record{
			rec("old", "2022-01-01"),
			rec("tie-first", "2023-01-01"),
			rec("tie-second", "2023-01-01"),
		}

		sorted := SortByDate(input)

		wantOrder := []string{"tie-first", "tie-second", "old"}
		for i, want := range wantOrder {
			if sorted[i].Slug != want {
				t.Errorf("position %d = %q, want %q", i, sorted[i].Slug, want)
			}
		}
	})

	t.Run("Input Untouched", func(t *testing.T) {
		input := []Record{
			rec("a", "2022-01-01"),
			rec("b", "2023-01-01"),
		}
		_ = SortByDate(input)
		if input[0].Slug != "a" {
			t.Error("SortByDate mutated its input")
		}
	})

	t.Run("Unparseable Dates Sort Last", func(t *testing.T) {
		input := []Record{
			rec("broken", "someday"),
			rec("fine", "2023-01-01"),
		}
		sorted := SortByDate(input)
		if sorted[0].Slug != "fine" || sorted[1].Slug != "broken" {
			t.Errorf("unexpected order: %q, %q", sorted[0].Slug, sorted[1].Slug)
		}
	})
}

func TestMetadata_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		meta Metadata
		want int
	}{
		{"Complete", Metadata{Title: "t", PublishedAt: "2023-01-01", Summary: "s"}, 0},
		{"All Missing", Metadata{}, 3},
		{"Whitespace Counts As Missing", Metadata{Title: "  ", PublishedAt: "2023-01-01", Summary: "s"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.meta.MissingFields()); got != tt.want {
				t.Errorf("MissingFields = %d, want %d", got, tt.want)
			}
		})
	}
}
