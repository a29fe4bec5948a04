package weather

import (
	"fmt"
	"math"
	"strings"

	"github.com/keifergrainger/cities/internal/city"
)

// TickerLine builds the one-line weather summary for the top ticker.
func TickerLine(c city.City, w *Weather) string {
	if w == nil || w.TempF == nil {
		return fmt.Sprintf("%s: Weather currently unavailable", c.CityName)
	}

	temp := int(math.Round(*w.TempF))
	desc := w.Condition
	if w.Description != "" {
		desc = capitalize(w.Description)
	}

	line := fmt.Sprintf("Now: %d°F · %s", temp, desc)
	if w.WindMph != nil {
		line += fmt.Sprintf(" · Wind %d mph", int(math.Round(*w.WindMph)))
	}
	return line
}

// HeroLine builds the longer hero sentence, branching on condition and
// temperature: snow, rain, warm (≥80), chilly (≤40), else comfortable.
func HeroLine(c city.City, w *Weather) string {
	if w == nil || w.TempF == nil {
		return fmt.Sprintf("Weather currently unavailable — but there’s still plenty happening around %s.", c.DisplayShortName())
	}

	temp := int(math.Round(*w.TempF))
	condition := strings.ToLower(w.Condition)

	switch {
	case strings.Contains(condition, "snow"):
		return fmt.Sprintf("%d°F · Snowy — bundle up, but it’s still a good night for a game or show.", temp)
	case strings.Contains(condition, "rain"):
		return fmt.Sprintf("%d°F · Rainy — grab a jacket and pick something indoors tonight.", temp)
	case temp >= 80:
		return fmt.Sprintf("%d°F · Warm evening — perfect for patios, markets, and night events.", temp)
	case temp <= 40:
		return fmt.Sprintf("%d°F · Chilly night — ideal for cozy indoor events around %s.", temp, c.DisplayShortName())
	default:
		return fmt.Sprintf("%d°F · Comfortable tonight — great weather to get out around %s.", temp, c.DisplayShortName())
	}
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
