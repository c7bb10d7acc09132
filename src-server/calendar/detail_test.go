package calendar_test

import (
	"strings"
	"testing"
	"time"

	"evcal/src-server/calendar"
	"evcal/src-server/model"

	"github.com/samber/mo"
)

func TestRenderEventDetail(t *testing.T) {
	start := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 5, 11, 30, 0, 0, time.UTC)
	eventModel := model.Event{
		ID:           7,
		Title:        "Dentist",
		Description:  "Bring the referral letter",
		StartUnixUTC: start.Unix(),
		EndUnixUTC:   end.Unix(),
	}

	markup := calendar.RenderEventDetail(mo.Some(eventModel), time.UTC)
	if !strings.Contains(markup, "<h2>Dentist</h2>") {
		t.Error("missing title")
	}
	if !strings.Contains(markup, "March 05 2024, 10:00am&mdash;11:30am") {
		t.Errorf("missing date/time range, got: %s", markup)
	}
	if !strings.Contains(markup, "<p>Bring the referral letter</p>") {
		t.Error("missing description")
	}
}

func TestRenderEventDetailAbsent(t *testing.T) {
	if markup := calendar.RenderEventDetail(mo.None[model.Event](), time.UTC); markup != "" {
		t.Errorf("absent event should render nothing, got %q", markup)
	}
}
