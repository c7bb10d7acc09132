package model_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"evcal/src-server/model"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	db, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	bundb := bun.NewDB(db, sqlitedialect.New())
	if err := model.CreateSchema(bundb); err != nil {
		t.Fatal(err)
	}
	return bundb
}

func TestEventInsertAndFetch(t *testing.T) {
	bundb := newTestDB(t)
	start := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	eventModel := model.Event{
		Title:        "Dentist",
		Description:  "Bring the referral letter",
		StartUnixUTC: start.Unix(),
		EndUnixUTC:   start.Add(time.Hour).Unix(),
	}
	if err := eventModel.Insert(context.Background(), bundb); err != nil {
		t.Fatal(err)
	}
	if eventModel.ID == 0 {
		t.Error("insert should assign an id")
	}

	// case: fetch by the assigned id, all fields round-trip
	fetched, err := model.EventByID(context.Background(), bundb, eventModel.ID)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := fetched.Get()
	if !ok {
		t.Fatal("event should exist")
	}
	if got.Title != eventModel.Title ||
		got.Description != eventModel.Description ||
		got.StartUnixUTC != eventModel.StartUnixUTC ||
		got.EndUnixUTC != eventModel.EndUnixUTC {
		t.Errorf("fetched event differs: %+v vs %+v", got, eventModel)
	}

	// case: nonexistent id is a None option, not an error
	missing, err := model.EventByID(context.Background(), bundb, 9999)
	if err != nil {
		t.Fatal(err)
	}
	if missing.IsPresent() {
		t.Error("nonexistent id should return None")
	}
}

func TestEventUpdate(t *testing.T) {
	bundb := newTestDB(t)
	start := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	eventModel := model.Event{
		Title:        "Before",
		Description:  "old",
		StartUnixUTC: start.Unix(),
		EndUnixUTC:   start.Add(time.Hour).Unix(),
	}
	if err := eventModel.Insert(context.Background(), bundb); err != nil {
		t.Fatal(err)
	}

	eventModel.Title = "After"
	eventModel.Description = "new"
	eventModel.StartUnixUTC = start.AddDate(0, 0, 1).Unix()
	eventModel.EndUnixUTC = start.AddDate(0, 0, 1).Add(time.Hour).Unix()
	if err := eventModel.Update(context.Background(), bundb); err != nil {
		t.Fatal(err)
	}

	fetched, err := model.EventByID(context.Background(), bundb, eventModel.ID)
	if err != nil {
		t.Fatal(err)
	}
	got := fetched.MustGet()
	if got.ID != eventModel.ID {
		t.Error("update must not change the id")
	}
	if got.Title != "After" || got.Description != "new" {
		t.Errorf("update should overwrite all fields, got %+v", got)
	}
	if got.StartUnixUTC != eventModel.StartUnixUTC || got.EndUnixUTC != eventModel.EndUnixUTC {
		t.Error("update should overwrite the dates")
	}

	// case: updating a nonexistent id reports not found
	ghost := model.Event{
		ID:           424242,
		Title:        "Ghost",
		StartUnixUTC: start.Unix(),
		EndUnixUTC:   start.Add(time.Hour).Unix(),
	}
	err = ghost.Update(context.Background(), bundb)
	if !errors.Is(err, model.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventsInRange(t *testing.T) {
	bundb := newTestDB(t)

	insert := func(title string, start time.Time) model.Event {
		t.Helper()
		eventModel := model.Event{
			Title:        title,
			StartUnixUTC: start.Unix(),
			EndUnixUTC:   start.Add(time.Hour).Unix(),
		}
		if err := eventModel.Insert(context.Background(), bundb); err != nil {
			t.Fatal(err)
		}
		return eventModel
	}

	insert("february", time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC))
	late := insert("late march", time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC))
	early := insert("early march", time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC))
	insert("april", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	rangeStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
	events, err := model.EventsInRange(context.Background(), bundb, rangeStart, rangeEnd)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events in march, got %d", len(events))
	}
	if events[0].ID != early.ID || events[1].ID != late.ID {
		t.Error("events should be ordered ascending by start date")
	}
}
