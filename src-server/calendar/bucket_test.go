package calendar_test

import (
	"testing"
	"time"

	"evcal/src-server/calendar"
	"evcal/src-server/model"
)

func TestBucketByDay(t *testing.T) {
	day5morning := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	day5evening := time.Date(2024, 3, 5, 19, 0, 0, 0, time.UTC)
	day20 := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	events := []model.Event{
		{ID: 1, Title: "first", StartUnixUTC: day5morning.Unix(), EndUnixUTC: day5morning.Add(time.Hour).Unix()},
		{ID: 2, Title: "second", StartUnixUTC: day5evening.Unix(), EndUnixUTC: day5evening.Add(time.Hour).Unix()},
		{ID: 3, Title: "third", StartUnixUTC: day20.Unix(), EndUnixUTC: day20.Add(time.Hour).Unix()},
	}

	buckets := calendar.BucketByDay(events, time.UTC)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if len(buckets[5]) != 2 || len(buckets[20]) != 1 {
		t.Fatalf("unexpected bucket sizes: %d and %d", len(buckets[5]), len(buckets[20]))
	}

	// case: events sharing a day keep their input order
	if buckets[5][0].ID != 1 || buckets[5][1].ID != 2 {
		t.Error("bucketing should preserve input order within a day")
	}
}

func TestBucketByDayHonorsLocation(t *testing.T) {
	// 2024-03-05 23:30 UTC is already March 6th one hour east
	east := time.FixedZone("east", 3600)
	start := time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC)
	events := []model.Event{
		{ID: 1, Title: "late", StartUnixUTC: start.Unix(), EndUnixUTC: start.Add(time.Hour).Unix()},
	}

	if buckets := calendar.BucketByDay(events, time.UTC); len(buckets[5]) != 1 {
		t.Error("expected the event under day 5 in UTC")
	}
	if buckets := calendar.BucketByDay(events, east); len(buckets[6]) != 1 {
		t.Error("expected the event under day 6 one hour east")
	}
}
