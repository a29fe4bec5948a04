package city

// Neighborhood is one entry in a city's neighborhood strip.
type Neighborhood struct {
	Name        string
	Description string
	URL         string
}

// LocalPro is a local service business listing shown on the city page.
type LocalPro struct {
	Name        string
	Category    string
	Description string
	CTALabel    string
	CTAURL      string
}

// City holds everything known about one city: routing keys, display
// strings, coordinates for the weather lookup, the IANA timezone used
// for event date math, and the static directory content.
//
// Records are defined at build time and never mutated after startup.
type City struct {
	Slug         string
	Domain       string
	CityName     string
	ShortName    string
	StateCode    string
	TimeZone     string
	Lat          float64
	Lon          float64
	HeroTagline  string
	HeroImageURL string

	BrandInitials string
	TickerLabel   string

	Neighborhoods []Neighborhood
	LocalPros     []LocalPro
}

// DisplayShortName returns the short name if set, otherwise the full city name.
func (c City) DisplayShortName() string {
	if c.ShortName != "" {
		return c.ShortName
	}
	return c.CityName
}
