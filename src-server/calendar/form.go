package calendar

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"evcal/src-server/model"
	"evcal/src-server/utils"

	"github.com/olebedev/when"
	"github.com/samber/mo"
	"github.com/uptrace/bun"
)

// Action tag a submission must carry for ProcessForm to touch storage.
const EditActionTag = "event_edit"

const formDateLayout = "2006-01-02 15:04"

// RenderEventForm renders the create form (existing is None) or the edit
// form pre-filled from the stored event. token is the caller's session
// anti-forgery value, embedded verbatim as a hidden field.
func RenderEventForm(existing mo.Option[model.Event], token string, loc *time.Location) string {
	submit := "Create a New Event"
	var id, title, desc, start, end string
	if eventModel, ok := existing.Get(); ok {
		submit = "Edit This Event"
		id = strconv.FormatInt(eventModel.ID, 10)
		title = eventModel.Title
		desc = eventModel.Description
		start = eventModel.StartTime(loc).Format(formDateLayout)
		end = eventModel.EndTime(loc).Format(formDateLayout)
	}

	var sb strings.Builder
	sb.WriteString("\n\t<form action=\"/event\" method=\"post\">")
	sb.WriteString("\n\t\t<fieldset>")
	fmt.Fprintf(&sb, "\n\t\t\t<legend>%s</legend>", submit)
	sb.WriteString("\n\t\t\t<label for=\"event_title\">Event Title</label>")
	fmt.Fprintf(&sb, "\n\t\t\t<input type=\"text\" name=\"event_title\" id=\"event_title\" value=\"%s\">", title)
	sb.WriteString("\n\t\t\t<label for=\"event_start\">Start Time</label>")
	fmt.Fprintf(&sb, "\n\t\t\t<input type=\"text\" name=\"event_start\" id=\"event_start\" value=\"%s\">", start)
	sb.WriteString("\n\t\t\t<label for=\"event_end\">End Time</label>")
	fmt.Fprintf(&sb, "\n\t\t\t<input type=\"text\" name=\"event_end\" id=\"event_end\" value=\"%s\">", end)
	sb.WriteString("\n\t\t\t<label for=\"event_description\">Event Description</label>")
	fmt.Fprintf(&sb, "\n\t\t\t<textarea name=\"event_description\" id=\"event_description\">%s</textarea>", desc)
	fmt.Fprintf(&sb, "\n\t\t\t<input type=\"hidden\" name=\"event_id\" value=\"%s\">", id)
	fmt.Fprintf(&sb, "\n\t\t\t<input type=\"hidden\" name=\"token\" value=\"%s\">", token)
	fmt.Fprintf(&sb, "\n\t\t\t<input type=\"hidden\" name=\"action\" value=\"%s\">", EditActionTag)
	fmt.Fprintf(&sb, "\n\t\t\t<input type=\"submit\" name=\"event_submit\" value=\"%s\">", submit)
	sb.WriteString("\n\t\t\tor <a href=\"/\">cancel</a>")
	sb.WriteString("\n\t\t</fieldset>")
	sb.WriteString("\n\t</form>\n")
	return sb.String()
}

// FormSubmission carries the raw field values of a posted create/edit
// form, before any validation.
type FormSubmission struct {
	Action      string
	ID          string
	Title       string
	Description string
	Start       string
	End         string
}

// ProcessForm validates a submission and persists it: insert when the id
// field is blank, update otherwise. Text fields are escaped before they
// hit storage so every later render can embed them verbatim. The error,
// when non-nil, is always a *Error with the failure kind set.
func ProcessForm(ctx context.Context, db bun.IDB, dateParser *when.Parser, loc *time.Location, sub FormSubmission) (int64, error) {
	if sub.Action != EditActionTag {
		return 0, newValidationError("the form was submitted with the wrong action tag")
	}

	title := html.EscapeString(utils.CleanupString(sub.Title))
	if title == "" {
		return 0, newValidationError("the event title must not be blank")
	}
	desc := html.EscapeString(strings.TrimSpace(sub.Description))

	start, err := parseFormDate(dateParser, loc, sub.Start)
	if err != nil {
		return 0, newValidationError(fmt.Sprintf("can't parse the start time: %s", err.Error()))
	}
	end, err := parseFormDate(dateParser, loc, sub.End)
	if err != nil {
		return 0, newValidationError(fmt.Sprintf("can't parse the end time: %s", err.Error()))
	}
	if end.Before(start) {
		return 0, newValidationError("the end time must not be before the start time")
	}

	eventModel := model.Event{
		Title:        title,
		Description:  desc,
		StartUnixUTC: start.UTC().Unix(),
		EndUnixUTC:   end.UTC().Unix(),
	}

	if strings.TrimSpace(sub.ID) == "" {
		if err := eventModel.Insert(ctx, db); err != nil {
			return 0, newStorageError("can't create the event", err)
		}
		return eventModel.ID, nil
	}

	id, err := strconv.ParseInt(strings.TrimSpace(sub.ID), 10, 64)
	if err != nil || id <= 0 {
		return 0, newValidationError("the event id must be a positive integer")
	}
	eventModel.ID = id
	if err := eventModel.Update(ctx, db); err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			return 0, newNotFoundError(fmt.Sprintf("no event with id %d", id))
		}
		return 0, newStorageError("can't update the event", err)
	}
	return id, nil
}

// Fixed layouts first, then the natural-language parser as a fallback so
// inputs like "tomorrow 5pm" still work.
func parseFormDate(dateParser *when.Parser, loc *time.Location, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("the field is blank")
	}
	for _, layout := range []string{"2006-01-02 15:04:05", formDateLayout, "2006-01-02"} {
		if parsed, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return parsed, nil
		}
	}
	if dateParser != nil {
		result, err := dateParser.Parse(raw, time.Now().In(loc))
		if err == nil && result != nil {
			return result.Time, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a recognizable date", raw)
}
