package plan

import (
	"strconv"
	"strings"
)

// defaultReps is used when a plain rep count cannot be parsed.
const defaultReps = 8

// ParseRepRange parses a client rep string into a min-max pair. "8-12"
// yields (8, 12); a plain number yields it for both bounds. Unparseable
// range bounds fall back to 1 and the min respectively; an unparseable
// plain value falls back to 8.
func ParseRepRange(reps string) (repMin, repMax int) {
	if strings.Contains(reps, "-") {
		parts := strings.SplitN(reps, "-", 2)
		repMin = parsePositiveInt(parts[0], 1)
		repMax = parsePositiveInt(parts[1], repMin)
		return repMin, repMax
	}

	value := parsePositiveInt(reps, defaultReps)
	return value, value
}

func parsePositiveInt(s string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
