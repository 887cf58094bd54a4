package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azhukov/campus-navigator/internal/client/models"
)

func TestHours(t *testing.T) {
	hours := Hours()
	require.Len(t, hours, 13)
	assert.Equal(t, 8, hours[0])
	assert.Equal(t, 20, hours[len(hours)-1])
}

func TestWeekOf_StartsOnMonday(t *testing.T) {
	// 2026-03-11 is a Wednesday
	wed := time.Date(2026, 3, 11, 15, 30, 0, 0, time.UTC)
	days := WeekOf(wed)

	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, 9, days[0].Day())
	assert.Equal(t, time.Sunday, days[6].Weekday())
	assert.Equal(t, 15, days[6].Day())
}

func TestWeekOf_SundayBelongsToPrecedingMonday(t *testing.T) {
	// 2026-03-15 is a Sunday; its week starts Monday the 9th
	sun := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	days := WeekOf(sun)

	assert.Equal(t, 9, days[0].Day())
	assert.Equal(t, 15, days[6].Day())
}

func TestWeekOf_MondayIsItsOwnStart(t *testing.T) {
	mon := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	days := WeekOf(mon)
	assert.Equal(t, 9, days[0].Day())
}

func TestNextPrevWeek(t *testing.T) {
	d := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 18, NextWeek(d).Day())
	assert.Equal(t, 4, PrevWeek(d).Day())
}

func TestRequestAt_SlotCoverage(t *testing.T) {
	reqs := []models.RoomRequest{
		{ID: 7, Date: "2026-03-11", StartTime: "10:00:00", EndTime: "12:00:00", Purpose: "Study group"},
	}
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	// a 10:00-12:00 booking occupies 10 and 11 but not 9 or 12
	assert.Nil(t, RequestAt(reqs, day, 9))
	require.NotNil(t, RequestAt(reqs, day, 10))
	require.NotNil(t, RequestAt(reqs, day, 11))
	assert.Nil(t, RequestAt(reqs, day, 12))

	assert.Equal(t, int64(7), RequestAt(reqs, day, 10).ID)
}

func TestRequestAt_WrongDay(t *testing.T) {
	reqs := []models.RoomRequest{
		{Date: "2026-03-11", StartTime: "10:00", EndTime: "11:00"},
	}
	otherDay := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, RequestAt(reqs, otherDay, 10))
}

func TestRequestAt_ShortTimeFormat(t *testing.T) {
	reqs := []models.RoomRequest{
		{Date: "2026-03-11", StartTime: "14:00", EndTime: "16:00"},
	}
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	assert.NotNil(t, RequestAt(reqs, day, 15))
}

func TestRequestAt_MalformedEntriesAreSkipped(t *testing.T) {
	reqs := []models.RoomRequest{
		{Date: "not-a-date", StartTime: "10:00", EndTime: "12:00"},
		{Date: "2026-03-11", StartTime: "bogus", EndTime: "12:00"},
		{ID: 3, Date: "2026-03-11", StartTime: "10:00", EndTime: "12:00"},
	}
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	got := RequestAt(reqs, day, 10)
	require.NotNil(t, got)
	assert.Equal(t, int64(3), got.ID)
}

func TestRequestAt_FirstMatchWins(t *testing.T) {
	reqs := []models.RoomRequest{
		{ID: 1, Date: "2026-03-11", StartTime: "10:00", EndTime: "12:00"},
		{ID: 2, Date: "2026-03-11", StartTime: "11:00", EndTime: "13:00"},
	}
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	got := RequestAt(reqs, day, 11)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)
}
