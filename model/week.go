package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultWeek is used whenever a week key is absent or a stored value fails
// validation.
const DefaultWeek = "week1"

var weekRegex = regexp.MustCompile(`^week([0-9]+)$`)

// NormalizeWeek trims and lowercases a raw week key and validates it against
// the week<digits> pattern. "Week3" and " week3 " both normalize to "week3".
// Normalizing an already-normalized key returns it unchanged.
func NormalizeWeek(raw string) (string, error) {
	week := strings.ToLower(strings.TrimSpace(raw))
	if !weekRegex.MatchString(week) {
		return "", fmt.Errorf("invalid week %q, expected week<number>", raw)
	}
	return week, nil
}

// WeekNumber returns the numeric component of a week key. The bool is false
// when the key does not match the week<digits> pattern.
func WeekNumber(week string) (int, bool) {
	m := weekRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(week)))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
