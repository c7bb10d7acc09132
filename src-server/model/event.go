package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/samber/mo"
	"github.com/uptrace/bun"
)

// Returned by (*Event).Update when the target row doesn't exist.
var ErrEventNotFound = errors.New("event not found")

type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID          int64  `bun:"event_id,pk,autoincrement"`
	Title       string `bun:"event_title,notnull"` // required
	Description string `bun:"event_desc"`

	StartUnixUTC int64 `bun:"event_start,notnull"` // required
	EndUnixUTC   int64 `bun:"event_end,notnull"`   // required
}

func (e *Event) validate() error {
	switch {
	case e.Title == "":
		return fmt.Errorf("title is blank")
	case e.StartUnixUTC == 0:
		return fmt.Errorf("start date is blank")
	case e.EndUnixUTC == 0:
		return fmt.Errorf("end date is blank")
	case e.StartUnixUTC > e.EndUnixUTC:
		return fmt.Errorf("start date must be before end date")
	}
	return nil
}

// Insert a new event, letting sqlite assign the ID. The assigned ID is
// written back into the receiver.
func (e *Event) Insert(ctx context.Context, db bun.IDB) error {
	if e.ID != 0 {
		return fmt.Errorf("(*Event).Insert: id must not be set")
	}
	if err := e.validate(); err != nil {
		return fmt.Errorf("(*Event).Insert: %w", err)
	}
	if _, err := db.NewInsert().
		Model(e).
		Exec(ctx); err != nil {
		return fmt.Errorf("(*Event).Insert: %w", err)
	}
	return nil
}

// Update overwrites every field of the stored row identified by e.ID.
// Returns ErrEventNotFound when no row matches.
func (e *Event) Update(ctx context.Context, db bun.IDB) error {
	if e.ID <= 0 {
		return fmt.Errorf("(*Event).Update: id must be positive")
	}
	if err := e.validate(); err != nil {
		return fmt.Errorf("(*Event).Update: %w", err)
	}
	res, err := db.NewUpdate().
		Model(e).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("(*Event).Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("(*Event).Update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("(*Event).Update: %w", ErrEventNotFound)
	}
	return nil
}

// EventsInRange loads every event whose start falls within [rangeStart,
// rangeEnd], ascending by start date.
func EventsInRange(ctx context.Context, db bun.IDB, rangeStart time.Time, rangeEnd time.Time) ([]Event, error) {
	eventModels := make([]Event, 0)
	if err := db.NewSelect().
		Model(&eventModels).
		Where("event_start >= ?", rangeStart.Unix()).
		Where("event_start <= ?", rangeEnd.Unix()).
		Order("event_start ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("EventsInRange: %w", err)
	}
	return eventModels, nil
}

// EventByID loads one event. Absence is a None option, not an error; the
// error return is reserved for storage failures.
func EventByID(ctx context.Context, db bun.IDB, id int64) (mo.Option[Event], error) {
	if id <= 0 {
		return mo.None[Event](), fmt.Errorf("EventByID: id must be positive, got %d", id)
	}
	eventModel := new(Event)
	if err := db.NewSelect().
		Model(eventModel).
		Where("event_id = ?", id).
		Limit(1).
		Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[Event](), nil
		}
		return mo.None[Event](), fmt.Errorf("EventByID: %w", err)
	}
	return mo.Some(*eventModel), nil
}

// StartTime returns the event start in the given location.
func (e *Event) StartTime(loc *time.Location) time.Time {
	return time.Unix(e.StartUnixUTC, 0).In(loc)
}

// EndTime returns the event end in the given location.
func (e *Event) EndTime(loc *time.Location) time.Time {
	return time.Unix(e.EndUnixUTC, 0).In(loc)
}
