package clock

import "time"

// Clock supplies the single reference moment used by every campaign window
// check. All implementations return times already converted to the business
// timezone so caller-local zones never leak into recurrence evaluation.
type Clock interface {
	Now() time.Time
}

type BusinessClock struct {
	loc *time.Location
}

func NewBusinessClock(loc *time.Location) Clock {
	return &BusinessClock{loc: loc}
}

func (c *BusinessClock) Now() time.Time {
	return time.Now().In(c.loc)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
