package calendar

import (
	"time"

	"evcal/src-server/model"
)

// BucketByDay groups events by the day-of-month of their start date.
// Input order is preserved within each day, so events arriving sorted by
// start date stay sorted inside their bucket. Range filtering is the
// caller's job; every event is bucketed as-is.
func BucketByDay(events []model.Event, loc *time.Location) map[int][]model.Event {
	buckets := make(map[int][]model.Event)
	for _, event := range events {
		day := event.StartTime(loc).Day()
		buckets[day] = append(buckets[day], event)
	}
	return buckets
}
