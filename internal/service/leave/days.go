package leave

import (
	"github.com/shopspring/decimal"

	"github.com/bayanihr/hr201-backend-go/internal/domain/leave"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/calendar"
)

// CalendarDays counts the days of [start, end] inclusive.
func CalendarDays(start, end calendar.Date) int {
	return calendar.DaysBetween(start, end)
}

// HolidaysWithin counts distinct holiday dates inside [start, end].
// Duplicate entries on the same date count once.
func HolidaysWithin(start, end calendar.Date, holidays []leave.Holiday) int {
	seen := make(map[string]struct{})
	for _, h := range holidays {
		if h.Date.InRange(start, end) {
			seen[h.Date.Key()] = struct{}{}
		}
	}
	return len(seen)
}

// TotalDays is the chargeable day count of a leave period: calendar days
// minus holidays that fall inside it.
func TotalDays(start, end calendar.Date, holidays []leave.Holiday) decimal.Decimal {
	days := CalendarDays(start, end) - HolidaysWithin(start, end, holidays)
	if days < 0 {
		days = 0
	}
	return decimal.NewFromInt(int64(days))
}
