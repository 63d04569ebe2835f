package domain

import "time"

// SeasonTag identifies one of the two fixed good-travel windows used by the catalog.
type SeasonTag string

// The catalog's season vocabulary. Tags are not mutually exclusive.
const (
	// SeasonDecApr spans December through April inclusive, wrapping across year-end.
	SeasonDecApr SeasonTag = "DEC-APR"

	// SeasonJunSep spans June through September inclusive.
	SeasonJunSep SeasonTag = "JUN-SEP"
)

// IsValid checks if the season tag is part of the fixed enumeration.
func (s SeasonTag) IsValid() bool {
	switch s {
	case SeasonDecApr, SeasonJunSep:
		return true
	default:
		return false
	}
}

// SeasonSuitable reports whether a trip over [start, end] overlaps any of the
// given season windows.
//
// The check is deliberately coarse: only the start and end months are examined,
// so a trip confined to a shoulder month (May, October, November) is unsuitable
// under both windows even when real travel conditions would be fine. Callers
// must not "fix" this; downstream scoring depends on the exact behavior.
func SeasonSuitable(seasons []SeasonTag, start, end time.Time) bool {
	startMonth := int(start.Month())
	endMonth := int(end.Month())

	for _, s := range seasons {
		switch s {
		case SeasonDecApr:
			if inDecAprWindow(startMonth) || inDecAprWindow(endMonth) {
				return true
			}
		case SeasonJunSep:
			if inJunSepWindow(startMonth) || inJunSepWindow(endMonth) {
				return true
			}
		}
	}
	return false
}

// inDecAprWindow reports whether the month falls in {12, 1, 2, 3, 4}.
func inDecAprWindow(month int) bool {
	return month >= 12 || month <= 4
}

// inJunSepWindow reports whether the month falls in {6, 7, 8, 9}.
func inJunSepWindow(month int) bool {
	return month >= 6 && month <= 9
}
