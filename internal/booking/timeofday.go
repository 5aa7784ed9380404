package booking

import (
	"fmt"
)

// TimeOfDay is a clock time expressed as minutes since midnight, local to
// the venue. Comparing two TimeOfDay values with < and > is always safe,
// unlike comparing raw "HH:MM" strings, which silently misorders
// non-zero-padded input.
type TimeOfDay int

// ParseTimeOfDay parses a strict zero-padded 24-hour "HH:MM" string.
// Anything else is rejected, including "9:00" and "24:00".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
		}
	}

	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	if hh > 23 || mm > 59 {
		return 0, fmt.Errorf("invalid time %q: hour must be 00-23 and minute 00-59", s)
	}

	return TimeOfDay(hh*60 + mm), nil
}

// String renders the time back as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Minutes returns the raw minutes-since-midnight value.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Touching endpoints do not overlap.
func overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && bStart < aEnd
}
