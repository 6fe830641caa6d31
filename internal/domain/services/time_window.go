package services

import (
	"time"

	"github.com/endri-fradomos/local-api/internal/domain/models"
)

// clockTime formats an instant as a second-precision "HH:MM:SS" time of day.
// Lexicographic comparison of strings in this form orders the same way as the
// times they denote, which is what the window checks below rely on.
func clockTime(now time.Time) string {
	return now.Format("15:04:05")
}

// windowMatches reports whether current falls inside [start, end]. A window
// whose start is later than its end spans midnight: it matches from start to
// 23:59:59 and again from 00:00:00 to end. The overnight branch never rolls
// into the next day's permission row.
func windowMatches(start, end, current string) bool {
	if start <= end {
		return start <= current && current <= end
	}
	return current >= start || current <= end
}

// matchingRoomNames evaluates permission rows against now and returns the
// distinct union of room names across all matching windows. Rows for other
// days of the week never match.
func matchingRoomNames(perms []models.AccessPermission, now time.Time) []string {
	day := int(now.Weekday())
	current := clockTime(now)

	seen := make(map[string]struct{})
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		if p.DayOfWeek != day {
			continue
		}
		if !windowMatches(p.StartTime, p.EndTime, current) {
			continue
		}
		if _, dup := seen[p.RoomName]; dup {
			continue
		}
		seen[p.RoomName] = struct{}{}
		names = append(names, p.RoomName)
	}
	return names
}
