package calendar

import (
	"fmt"
	"time"

	"evcal/src-server/model"

	"github.com/samber/mo"
)

// RenderEventDetail renders the single-event view: title, the date with
// the start and end times, and the description. An absent event renders
// nothing; the caller shows its empty state. Title and description were
// escaped on submission and are embedded verbatim here.
func RenderEventDetail(event mo.Option[model.Event], loc *time.Location) string {
	eventModel, ok := event.Get()
	if !ok {
		return ""
	}

	start := eventModel.StartTime(loc)
	end := eventModel.EndTime(loc)
	return fmt.Sprintf("<h2>%s</h2>", eventModel.Title) +
		fmt.Sprintf("\n\t<p class=\"dates\">%s, %s&mdash;%s</p>",
			start.Format("January 02 2006"),
			start.Format("3:04pm"),
			end.Format("3:04pm")) +
		fmt.Sprintf("\n\t<p>%s</p>", eventModel.Description)
}
