package weather

// Weather is the normalized current-conditions record for a city. Numeric
// fields are pointers so "no reading" stays distinct from zero degrees; a
// nil *Weather means the whole lookup was unavailable.
type Weather struct {
	TempF       *float64
	FeelsLikeF  *float64
	WindMph     *float64
	Condition   string
	Description string
}
