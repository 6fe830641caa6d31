package services

import (
	"testing"
	"time"

	"github.com/endri-fradomos/local-api/internal/domain/models"
)

func TestWindowMatchesSameDay(t *testing.T) {
	cases := []struct {
		name    string
		current string
		want    bool
	}{
		{"before window", "08:59:59", false},
		{"at start", "09:00:00", true},
		{"inside", "12:30:00", true},
		{"at end", "17:00:00", true},
		{"after window", "17:00:01", false},
	}

	for _, tc := range cases {
		got := windowMatches("09:00:00", "17:00:00", tc.current)
		if got != tc.want {
			t.Errorf("%s: windowMatches(09:00:00, 17:00:00, %s) = %v, want %v", tc.name, tc.current, got, tc.want)
		}
	}
}

func TestWindowMatchesOvernight(t *testing.T) {
	cases := []struct {
		name    string
		current string
		want    bool
	}{
		{"evening before start", "21:59:59", false},
		{"at start", "22:00:00", true},
		{"before midnight", "23:30:00", true},
		{"just after midnight", "00:00:00", true},
		{"early morning", "05:59:59", true},
		{"at end", "06:00:00", true},
		{"morning after end", "06:00:01", false},
		{"midday", "12:00:00", false},
	}

	for _, tc := range cases {
		got := windowMatches("22:00:00", "06:00:00", tc.current)
		if got != tc.want {
			t.Errorf("%s: windowMatches(22:00:00, 06:00:00, %s) = %v, want %v", tc.name, tc.current, got, tc.want)
		}
	}
}

func TestWindowMatchesZeroWidth(t *testing.T) {
	if !windowMatches("12:00:00", "12:00:00", "12:00:00") {
		t.Error("expected a zero-width window to match its own instant")
	}
	if windowMatches("12:00:00", "12:00:00", "12:00:01") {
		t.Error("expected a zero-width window to reject any other instant")
	}
}

func TestMatchingRoomNamesFiltersDayAndWindow(t *testing.T) {
	// 2026-09-02 is a Wednesday
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	perms := []models.AccessPermission{
		{RoomName: "Living Room", DayOfWeek: 3, StartTime: "09:00:00", EndTime: "17:00:00"},
		{RoomName: "Kitchen", DayOfWeek: 3, StartTime: "11:00:00", EndTime: "13:00:00"},
		{RoomName: "Garage", DayOfWeek: 4, StartTime: "09:00:00", EndTime: "17:00:00"},
	}

	got := matchingRoomNames(perms, now)
	if len(got) != 1 || got[0] != "Living Room" {
		t.Errorf("expected [Living Room], got %v", got)
	}
}

func TestMatchingRoomNamesDeduplicates(t *testing.T) {
	// Two overlapping windows on the same room yield one entry
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	perms := []models.AccessPermission{
		{RoomName: "Office", DayOfWeek: 3, StartTime: "08:00:00", EndTime: "12:00:00"},
		{RoomName: "Office", DayOfWeek: 3, StartTime: "09:00:00", EndTime: "18:00:00"},
	}

	got := matchingRoomNames(perms, now)
	if len(got) != 1 || got[0] != "Office" {
		t.Errorf("expected [Office], got %v", got)
	}
}

func TestMatchingRoomNamesEmptyOnNoMatch(t *testing.T) {
	// Saturday evening, no permission covers it
	now := time.Date(2026, 9, 5, 20, 0, 0, 0, time.UTC)

	perms := []models.AccessPermission{
		{RoomName: "Living Room", DayOfWeek: 3, StartTime: "09:00:00", EndTime: "17:00:00"},
	}

	got := matchingRoomNames(perms, now)
	if len(got) != 0 {
		t.Errorf("expected no rooms, got %v", got)
	}
}
