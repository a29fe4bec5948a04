package city

import "strings"

// Directory is an immutable lookup table of cities, keyed by slug and by
// public host name. Build it once at startup and pass it by reference;
// it is safe for concurrent reads.
type Directory struct {
	bySlug   map[string]City
	byDomain map[string]City
	ordered  []City
}

// NewDirectory builds a Directory from the given city records.
// Later records win on duplicate slugs or domains.
func NewDirectory(cities []City) *Directory {
	d := &Directory{
		bySlug:   make(map[string]City, len(cities)),
		byDomain: make(map[string]City, len(cities)),
		ordered:  make([]City, 0, len(cities)),
	}
	for _, c := range cities {
		d.bySlug[strings.ToLower(c.Slug)] = c
		if c.Domain != "" {
			d.byDomain[strings.ToLower(c.Domain)] = c
		}
		d.ordered = append(d.ordered, c)
	}
	return d
}

// BySlug looks up a city by its URL slug, case-insensitively.
func (d *Directory) BySlug(slug string) (City, bool) {
	c, ok := d.bySlug[strings.ToLower(slug)]
	return c, ok
}

// ByHost looks up a city by request host name. Matching is
// case-insensitive and ignores any port suffix.
func (d *Directory) ByHost(host string) (City, bool) {
	host = strings.ToLower(host)
	if i := strings.IndexByte(host, ':'); i != -1 {
		host = host[:i]
	}
	c, ok := d.byDomain[host]
	return c, ok
}

// All returns the cities in registration order.
func (d *Directory) All() []City {
	out := make([]City, len(d.ordered))
	copy(out, d.ordered)
	return out
}
