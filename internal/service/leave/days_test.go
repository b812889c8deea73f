package leave

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bayanihr/hr201-backend-go/internal/domain/leave"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/calendar"
)

func holidayOn(date string) leave.Holiday {
	return leave.Holiday{Name: "holiday", Date: calendar.MustParse(date)}
}

func TestTotalDays(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		holidays []leave.Holiday
		want     int64
	}{
		{
			name:  "full week no holidays",
			start: "2025-06-02", end: "2025-06-06",
			want: 5,
		},
		{
			name:  "one holiday inside",
			start: "2025-06-02", end: "2025-06-06",
			holidays: []leave.Holiday{holidayOn("2025-06-04")},
			want:     4,
		},
		{
			name:  "holiday outside range ignored",
			start: "2025-06-02", end: "2025-06-06",
			holidays: []leave.Holiday{holidayOn("2025-06-09")},
			want:     5,
		},
		{
			name:  "duplicate holiday rows count once",
			start: "2025-06-02", end: "2025-06-06",
			holidays: []leave.Holiday{holidayOn("2025-06-04"), holidayOn("2025-06-04")},
			want:     4,
		},
		{
			name:  "single day",
			start: "2025-06-02", end: "2025-06-02",
			want: 1,
		},
		{
			name:  "single day holiday",
			start: "2025-06-02", end: "2025-06-02",
			holidays: []leave.Holiday{holidayOn("2025-06-02")},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalDays(calendar.MustParse(tt.start), calendar.MustParse(tt.end), tt.holidays)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)),
				"want %d got %s", tt.want, got)
		})
	}
}

func TestHolidaysWithin(t *testing.T) {
	start, end := calendar.MustParse("2025-12-24"), calendar.MustParse("2025-12-26")
	holidays := []leave.Holiday{
		holidayOn("2025-12-25"),
		holidayOn("2025-12-30"),
		holidayOn("2025-12-24"),
	}
	assert.Equal(t, 2, HolidaysWithin(start, end, holidays))
}

func TestCalendarDaysSpansMonths(t *testing.T) {
	assert.Equal(t, 4, CalendarDays(calendar.MustParse("2025-01-30"), calendar.MustParse("2025-02-02")))
}
