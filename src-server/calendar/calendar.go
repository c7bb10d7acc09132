package calendar

import (
	"context"
	"time"

	"evcal/src-server/model"

	"github.com/uptrace/bun"
)

// Calendar holds everything needed to render one month: the resolved
// month/year geometry plus the month's events bucketed by day. It is
// rebuilt per render and holds no storage reference afterwards.
type Calendar struct {
	useDate     time.Time
	month       time.Month
	year        int
	daysInMonth int
	startDay    int
	loc         *time.Location
	events      map[int][]model.Event
}

// New resolves the calendar context around useDate and loads the month's
// events from the database. useDate's location decides day boundaries.
func New(ctx context.Context, db bun.IDB, useDate time.Time) (*Calendar, error) {
	loc := useDate.Location()
	month := useDate.Month()
	year := useDate.Year()
	daysInMonth, startDay := MonthGeometry(month, year)

	monthStart, monthEnd := MonthBounds(month, year, loc)
	events, err := model.EventsInRange(ctx, db, monthStart, monthEnd)
	if err != nil {
		return nil, newStorageError("can't load events for the month", err)
	}

	return &Calendar{
		useDate:     useDate,
		month:       month,
		year:        year,
		daysInMonth: daysInMonth,
		startDay:    startDay,
		loc:         loc,
		events:      BucketByDay(events, loc),
	}, nil
}

func (c *Calendar) Month() time.Month { return c.month }

func (c *Calendar) Year() int { return c.year }

func (c *Calendar) DaysInMonth() int { return c.daysInMonth }

// Weekday index of day 1, 0=Sunday.
func (c *Calendar) StartDay() int { return c.startDay }

// EventsOn returns the events bucketed under a day of the month.
func (c *Calendar) EventsOn(day int) []model.Event { return c.events[day] }
