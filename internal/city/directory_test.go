package city

import (
	"testing"
	"time"
)

func testCities() []City {
	return []City{
		{Slug: "saltlake", Domain: "saltlakeut.com", CityName: "Salt Lake City", TimeZone: "America/Denver"},
		{Slug: "boise", Domain: "boiseid.com", CityName: "Boise", TimeZone: "America/Boise"},
	}
}

func TestDirectoryBySlug(t *testing.T) {
	d := NewDirectory(testCities())

	tests := []struct {
		name     string
		slug     string
		wantCity string
		wantOK   bool
	}{
		{"exact match", "saltlake", "Salt Lake City", true},
		{"case insensitive", "SaltLake", "Salt Lake City", true},
		{"second record", "boise", "Boise", true},
		{"unknown slug", "denver", "", false},
		{"empty slug", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := d.BySlug(tt.slug)
			if ok != tt.wantOK {
				t.Fatalf("BySlug(%q) ok = %v, want %v", tt.slug, ok, tt.wantOK)
			}
			if ok && c.CityName != tt.wantCity {
				t.Errorf("BySlug(%q) = %q, want %q", tt.slug, c.CityName, tt.wantCity)
			}
		})
	}
}

func TestDirectoryByHost(t *testing.T) {
	d := NewDirectory(testCities())

	tests := []struct {
		name   string
		host   string
		wantOK bool
	}{
		{"exact match", "saltlakeut.com", true},
		{"mixed case", "SaltLakeUT.com", true},
		{"with port", "saltlakeut.com:8080", true},
		{"mixed case with port", "SaltLakeUT.com:8080", true},
		{"unknown host", "example.com", false},
		{"empty host", "", false},
		{"bare port", ":8080", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := d.ByHost(tt.host)
			if ok != tt.wantOK {
				t.Fatalf("ByHost(%q) ok = %v, want %v", tt.host, ok, tt.wantOK)
			}
			if ok && c.Slug != "saltlake" {
				t.Errorf("ByHost(%q) resolved %q, want saltlake", tt.host, c.Slug)
			}
		})
	}
}

func TestDirectoryAllPreservesOrder(t *testing.T) {
	d := NewDirectory(testCities())

	all := d.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 cities, got %d", len(all))
	}
	if all[0].Slug != "saltlake" || all[1].Slug != "boise" {
		t.Errorf("unexpected order: %q, %q", all[0].Slug, all[1].Slug)
	}
}

func TestDisplayShortName(t *testing.T) {
	c := City{CityName: "Salt Lake City", ShortName: "Salt Lake"}
	if got := c.DisplayShortName(); got != "Salt Lake" {
		t.Errorf("DisplayShortName() = %q, want Salt Lake", got)
	}

	c.ShortName = ""
	if got := c.DisplayShortName(); got != "Salt Lake City" {
		t.Errorf("DisplayShortName() = %q, want Salt Lake City", got)
	}
}

func TestSeedRecordsAreWellFormed(t *testing.T) {
	seed := Seed()
	if len(seed) == 0 {
		t.Fatal("expected at least one seed city")
	}

	for _, c := range seed {
		if c.Slug == "" || c.Domain == "" || c.CityName == "" || c.StateCode == "" {
			t.Errorf("city %q missing required fields", c.Slug)
		}
		if _, err := time.LoadLocation(c.TimeZone); err != nil {
			t.Errorf("city %q has invalid timezone %q: %v", c.Slug, c.TimeZone, err)
		}
		if c.Lat == 0 && c.Lon == 0 {
			t.Errorf("city %q has no coordinates", c.Slug)
		}
	}

	d := NewDirectory(seed)
	if _, ok := d.BySlug("saltlake"); !ok {
		t.Error("expected saltlake in seed directory")
	}
}
