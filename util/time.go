package util

import (
	"fmt"
	"time"
)

// ParseCivilDate parses a "2006-01-02" date as noon in the given location.
// Anchoring to noon keeps the civil date stable against timezone conversion.
func ParseCivilDate(s string, loc *time.Location) (int64, error) {
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return 0, fmt.Errorf("bad date %q: %v", s, err)
	}
	return t.Add(12 * time.Hour).Unix(), nil
}
