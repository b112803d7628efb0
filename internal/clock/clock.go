// Package clock позволяет подменять текущее время в сервисах и тестах.
package clock

import "time"

// Clock возвращает текущий момент времени.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// NewSystem возвращает часы на основе time.Now в часовом поясе loc.
// Если loc равен nil, используется time.Local.
func NewSystem(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

type fixedClock struct {
	now time.Time
}

// NewFixed возвращает часы, которые всегда показывают t.
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t}
}

func (f fixedClock) Now() time.Time {
	return f.now
}
