// Package impl contains the implementation of the application's business logic.
package impl

import (
	"time"

	"trainbook/internal/domain/daterule"
	"trainbook/internal/usecase"

	"cloud.google.com/go/civil"
)

// calendar binds the date rules to a clock and the zone reminders fire in.
type calendar struct {
	clock usecase.Clock
	loc   *time.Location
}

func newCalendar(clock usecase.Clock, loc *time.Location) calendar {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.Local
	}

	return calendar{clock: clock, loc: loc}
}

func (c calendar) now() time.Time {
	return c.clock()
}

func (c calendar) today() civil.Date {
	return daterule.Today(c.clock(), c.loc)
}

func (c calendar) fireInstant(date civil.Date, timeOfDay civil.Time) time.Time {
	return daterule.ToFireInstant(date, timeOfDay, c.loc)
}
