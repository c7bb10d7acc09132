package calendar

import (
	"fmt"
	"strings"
	"time"
)

var weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// BuildGrid renders the month as rows of seven <li> cells: startDay
// leading filler cells, then the numbered days with their event links,
// then trailing filler to pad the final week. now drives the "today"
// marker; it is compared against the calendar's month and year.
func (c *Calendar) BuildGrid(now time.Time) string {
	var sb strings.Builder

	sb.WriteString("\n\t<h2>" + c.useDate.Format("January 2006") + "</h2>")
	sb.WriteString("\n\t<ul class=\"weekdays\">")
	for _, label := range weekdays {
		sb.WriteString("\n\t\t<li>" + label + "</li>")
	}
	sb.WriteString("\n\t</ul>")

	now = now.In(c.loc)
	today := now.Day()
	thisMonth := now.Month()
	thisYear := now.Year()

	sb.WriteString("\n\t<ul>")
	i, day := 1, 1
	for ; day <= c.daysInMonth; i++ {
		filler := i <= c.startDay

		var class string
		if filler {
			class = "fill"
		}

		date := "&nbsp;"
		var eventInfo string
		if !filler {
			if day == today && thisMonth == c.month && thisYear == c.year {
				class = "today"
			}
			for _, event := range c.events[day] {
				eventInfo += fmt.Sprintf("\n\t\t\t<a href=\"/event/%d\">%s</a>", event.ID, event.Title)
			}
			date = fmt.Sprintf("\n\t\t\t<strong>%02d</strong>", day)
			day++
		}

		fmt.Fprintf(&sb, "\n\t\t<li class=\"%s\">", class)
		sb.WriteString(date)
		sb.WriteString(eventInfo)
		sb.WriteString("\n\t\t</li>")

		// Saturday closes the row
		if i%7 == 0 {
			sb.WriteString("\n\t</ul>\n\t<ul>")
		}
	}

	// pad the last row out to a full week
	for ; (i-1)%7 != 0; i++ {
		sb.WriteString("\n\t\t<li class=\"fill\">&nbsp;</li>")
	}

	sb.WriteString("\n\t</ul>\n")
	return sb.String()
}
