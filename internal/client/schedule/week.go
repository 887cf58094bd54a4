// Package schedule lays room requests out on a weekly grid: Monday-start
// weeks and hourly slots from 08:00 to 20:00. The grid is what the booking
// view renders and what slot lookups run against.
package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/azhukov/campus-navigator/internal/client/models"
)

const (
	// FirstHour and LastHour bound the bookable day, inclusive.
	FirstHour = 8
	LastHour  = 20
)

// Hours returns the bookable slot hours in order.
func Hours() []int {
	hours := make([]int, 0, LastHour-FirstHour+1)
	for h := FirstHour; h <= LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// WeekOf returns the seven days of the week containing date, starting on
// Monday. A Sunday belongs to the week that began the previous Monday.
func WeekOf(date time.Time) [7]time.Time {
	day := date.Weekday()
	offset := int(day) - 1
	if day == time.Sunday {
		offset = 6
	}
	monday := time.Date(date.Year(), date.Month(), date.Day()-offset, 0, 0, 0, 0, date.Location())

	var days [7]time.Time
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// NextWeek and PrevWeek shift the reference date by one week.
func NextWeek(date time.Time) time.Time { return date.AddDate(0, 0, 7) }
func PrevWeek(date time.Time) time.Time { return date.AddDate(0, 0, -7) }

// RequestAt finds the first request occupying the given day and hour slot.
// A request covers [start hour, end hour): a 10:00-12:00 booking occupies
// the 10 and 11 slots but not 12. Returns nil when the slot is free.
func RequestAt(requests []models.RoomRequest, day time.Time, hour int) *models.RoomRequest {
	for i := range requests {
		req := &requests[i]

		date, err := time.ParseInLocation("2006-01-02", req.Date, day.Location())
		if err != nil {
			continue
		}
		if !sameDay(date, day) {
			continue
		}

		startH, ok := hourOf(req.StartTime)
		if !ok {
			continue
		}
		endH, ok := hourOf(req.EndTime)
		if !ok {
			continue
		}

		if hour >= startH && hour < endH {
			return req
		}
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// hourOf extracts the hour from "HH:MM" or "HH:MM:SS".
func hourOf(t string) (int, bool) {
	h, _, found := strings.Cut(t, ":")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(h)
	if err != nil || n < 0 || n > 23 {
		return 0, false
	}
	return n, true
}
