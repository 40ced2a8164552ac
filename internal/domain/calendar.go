package domain

import "time"

// BusinessCalendar describes the salon's operating window.
// Minutes are counted from midnight of the local calendar day.
type BusinessCalendar struct {
	OpenMinute     int
	CloseMinute    int
	ClosedWeekdays map[time.Weekday]bool
}

// SalonCalendar is the fixed operating schedule: open 08:30, close 18:00,
// closed on Sundays and Mondays.
var SalonCalendar = BusinessCalendar{
	OpenMinute:  8*60 + 30,
	CloseMinute: 18 * 60,
	ClosedWeekdays: map[time.Weekday]bool{
		time.Sunday: true,
		time.Monday: true,
	},
}

// IsClosedOn returns true if the salon does not operate on the weekday of date
func (c BusinessCalendar) IsClosedOn(date time.Time) bool {
	return c.ClosedWeekdays[date.Weekday()]
}
