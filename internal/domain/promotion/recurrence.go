package promotion

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidClockTime = errors.New("clock time must be HH:MM")

const minutesPerDay = 24 * 60

// ClockSpan is a daily recurring slot expressed in minutes since midnight of
// the reference clock. start > end means the slot crosses midnight
// (e.g. 23:00-02:00). Boundaries are inclusive.
type ClockSpan struct {
	start int
	end   int
}

func ParseClockTime(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, ErrInvalidClockTime
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, ErrInvalidClockTime
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, ErrInvalidClockTime
	}
	return hour*60 + minute, nil
}

func NewClockSpan(start, end string) (ClockSpan, error) {
	s, err := ParseClockTime(start)
	if err != nil {
		return ClockSpan{}, fmt.Errorf("invalid slot start %q: %w", start, err)
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return ClockSpan{}, fmt.Errorf("invalid slot end %q: %w", end, err)
	}
	return ClockSpan{start: s, end: e}, nil
}

func (c ClockSpan) Contains(minuteOfDay int) bool {
	if minuteOfDay < 0 || minuteOfDay >= minutesPerDay {
		return false
	}
	if c.start <= c.end {
		return c.start <= minuteOfDay && minuteOfDay <= c.end
	}
	// crosses midnight
	return minuteOfDay >= c.start || minuteOfDay <= c.end
}

func (c ClockSpan) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", c.start/60, c.start%60, c.end/60, c.end%60)
}

// Recurrence narrows a campaign's active window to daily time slots and
// weekdays. An empty slot list or day set means that dimension never limits.
type Recurrence struct {
	spans []ClockSpan
	days  map[time.Weekday]struct{}
}

func NewRecurrence(spans []ClockSpan, days []time.Weekday) Recurrence {
	var daySet map[time.Weekday]struct{}
	if len(days) > 0 {
		daySet = make(map[time.Weekday]struct{}, len(days))
		for _, d := range days {
			daySet[d] = struct{}{}
		}
	}
	return Recurrence{spans: spans, days: daySet}
}

func (r Recurrence) IsAlwaysOn() bool {
	return len(r.spans) == 0 && len(r.days) == 0
}

// Matches evaluates both the slot and weekday checks against a single moment.
// The moment must already be in the reference timezone; Matches never converts.
func (r Recurrence) Matches(now time.Time) bool {
	if len(r.days) > 0 {
		if _, ok := r.days[now.Weekday()]; !ok {
			return false
		}
	}
	if len(r.spans) == 0 {
		return true
	}
	minute := now.Hour()*60 + now.Minute()
	for _, span := range r.spans {
		if span.Contains(minute) {
			return true
		}
	}
	return false
}

func (r Recurrence) Spans() []ClockSpan {
	return r.spans
}

func (r Recurrence) Days() []time.Weekday {
	days := make([]time.Weekday, 0, len(r.days))
	for d := range r.days {
		days = append(days, d)
	}
	return days
}
