package city

// Seed returns the built-in city records. Adding a city to the network
// means adding a record here and pointing its domain at the server.
func Seed() []City {
	return []City{
		{
			Slug:         "saltlake",
			Domain:       "saltlakeut.com",
			CityName:     "Salt Lake City",
			ShortName:    "Salt Lake",
			StateCode:    "UT",
			TimeZone:     "America/Denver",
			Lat:          40.7608,
			Lon:          -111.891,
			HeroTagline:  "See what’s happening tonight & who to call when you need help.",
			HeroImageURL: "https://images.pexels.com/photos/3586966/pexels-photo-3586966.jpeg?auto=compress&cs=tinysrgb&w=1600",

			BrandInitials: "SL",
			TickerLabel:   "Live city ticker — Salt Lake City, Utah",

			Neighborhoods: []Neighborhood{
				{Name: "Downtown", Description: "Arena, nightlife, office towers.", URL: "/neighborhoods#downtown"},
				{Name: "Sugar House", Description: "Parks, coffee, older homes.", URL: "/neighborhoods#sugar-house"},
				{Name: "9th & 9th", Description: "Restaurants, boutiques, walkable.", URL: "/neighborhoods#ninth-and-ninth"},
				{Name: "The Avenues", Description: "Historic homes, hills, views.", URL: "/neighborhoods#avenues"},
			},
			LocalPros: []LocalPro{
				{
					Name:        "Wasatch Roofing & Exteriors",
					Category:    "Roofing",
					Description: "Salt Lake City & valley · Free inspections · Storm damage & leaks",
					CTALabel:    "Visit website →",
					CTAURL:      "#",
				},
				{
					Name:        "Salt Lake HVAC Pros",
					Category:    "Heating & cooling",
					Description: "24/7 emergency service · Residential & light commercial",
					CTALabel:    "Book a service call →",
					CTAURL:      "#",
				},
				{
					Name:        "Downtown Realty Group",
					Category:    "Real estate",
					Description: "Condos, townhomes, investment properties across Salt Lake County",
					CTALabel:    "See listings →",
					CTAURL:      "#",
				},
				{
					Name:        "Mountain View Landscaping",
					Category:    "Landscaping & snow removal",
					Description: "Year-round maintenance · Residential & HOAs",
					CTALabel:    "Request a quote →",
					CTAURL:      "#",
				},
			},
		},
	}
}
