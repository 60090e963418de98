package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStart(t *testing.T) {
	// 2025-01-08 - среда, неделя начинается в понедельник 2025-01-06
	wednesday := time.Date(2025, 1, 8, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), WeekStart(wednesday))

	// Понедельник остаётся на месте
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, WeekStart(monday))

	// Воскресенье принадлежит предыдущей неделе
	sunday := time.Date(2025, 1, 12, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, WeekStart(sunday))
}

func TestWeekEnd(t *testing.T) {
	wednesday := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), WeekEnd(wednesday))
}

func TestBookableDays_ExcludesSundays(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)  // понедельник
	end := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)   // воскресенье

	days := BookableDays(start, end)

	require.Len(t, days, 6)
	for _, d := range days {
		assert.NotEqual(t, time.Sunday, d.Weekday())
	}
	assert.Equal(t, start, days[0])
	assert.Equal(t, time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC), days[5])
}

func TestMonthWeeks(t *testing.T) {
	weeks := MonthWeeks(2025, time.January)

	// Январь 2025 пересекают пять недель, первая начинается 2024-12-30
	require.Len(t, weeks, 5)
	assert.Equal(t, time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), weeks[0])
	assert.Equal(t, time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC), weeks[4])

	for _, w := range weeks {
		assert.Equal(t, time.Monday, w.Weekday())
	}
}
