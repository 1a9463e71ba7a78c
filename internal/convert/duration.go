package convert

import (
	"strconv"
	"strings"
)

// parseDurationMinutes parses an ISO-8601 duration ("PT1H30M",
// "P0DT0H45M", "PT90M") or a bare numeric minute count into whole
// minutes. Anything unparseable is 0; durations never reject a recipe.
func parseDurationMinutes(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	// Raw minute count
	if n, err := strconv.Atoi(s); err == nil {
		if n > 0 {
			return n
		}
		return 0
	}

	upper := strings.ToUpper(s)
	if !strings.HasPrefix(upper, "P") {
		return 0
	}

	datePart, timePart, hasTime := strings.Cut(upper[1:], "T")
	if !hasTime {
		timePart = ""
	}

	total := 0.0
	total += componentMinutes(datePart, 'D', 24*60)
	total += componentMinutes(timePart, 'H', 60)
	total += componentMinutes(timePart, 'M', 1)
	total += componentMinutes(timePart, 'S', 1.0/60.0)

	if total <= 0 {
		return 0
	}
	return int(total + 0.5)
}

// componentMinutes extracts the numeric value preceding the given
// designator and converts it to minutes.
func componentMinutes(part string, designator byte, minutesPer float64) float64 {
	idx := strings.IndexByte(part, designator)
	if idx <= 0 {
		return 0
	}

	// Walk back over the number
	start := idx
	for start > 0 {
		c := part[start-1]
		if (c >= '0' && c <= '9') || c == '.' {
			start--
			continue
		}
		break
	}

	value, err := strconv.ParseFloat(part[start:idx], 64)
	if err != nil {
		return 0
	}
	return value * minutesPer
}
