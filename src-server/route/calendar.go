package route

import (
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"evcal/src-server/calendar"
	"evcal/src-server/model"
	"evcal/src-server/utils"

	"github.com/samber/mo"
)

func writePage(w http.ResponseWriter, status int, title string, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>%s</title>
	<link rel="stylesheet" type="text/css" media="screen, projection" href="/assets/css/style.css">
</head>
<body>
%s
</body>
</html>`, title, body)
}

func Calendar(muxer *http.ServeMux, as *utils.AppState) {
	loc := as.Config.GetLocation()

	// the month grid, for ?date=YYYY-MM-DD or the current month
	grid := SessionMiddleware(as, func(w http.ResponseWriter, r *http.Request) {
		useDate := time.Now().In(loc)
		if raw := r.URL.Query().Get("date"); raw != "" {
			parsed, err := time.ParseInLocation("2006-01-02", raw, loc)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid date, expected YYYY-MM-DD"))
				return
			}
			useDate = parsed
		}

		startTimer := time.Now()
		cal, err := calendar.New(r.Context(), as.BunDB, useDate)
		if err != nil {
			slog.Error("can't build the calendar", "error", err)
			writePage(w, http.StatusInternalServerError, "Events Calendar",
				"\n\t<h2>Something went wrong</h2>\n\t<p>The calendar can't be shown right now.</p>")
			return
		}
		as.MetricChans.ObserveDatabaseRead(time.Since(startTimer))

		body := cal.BuildGrid(time.Now().In(loc)) +
			"\n\t<a href=\"/event/new\">+ Create a New Event</a>\n"
		writePage(w, http.StatusOK, "Events Calendar", body)
	})
	muxer.HandleFunc("GET /{$}", grid)
	muxer.HandleFunc("GET /calendar", grid)

	// single event detail
	muxer.HandleFunc("GET /event/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil || id <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("The event id must be a positive integer"))
			return
		}

		startTimer := time.Now()
		eventOption, err := model.EventByID(r.Context(), as.BunDB, id)
		if err != nil {
			slog.Error("can't load event", "id", id, "error", err)
			writePage(w, http.StatusInternalServerError, "Events Calendar",
				"\n\t<h2>Something went wrong</h2>\n\t<p>The event can't be shown right now.</p>")
			return
		}
		as.MetricChans.ObserveDatabaseRead(time.Since(startTimer))

		markup := calendar.RenderEventDetail(eventOption, loc)
		if markup == "" {
			writePage(w, http.StatusNotFound, "Events Calendar",
				"\n\t<h2>No such event</h2>\n\t<p><a href=\"/\">back to the calendar</a></p>")
			return
		}
		body := "\n\t" + markup +
			fmt.Sprintf("\n\t<a href=\"/event/%d/edit\">edit this event</a>", id) +
			"\n\t<a href=\"/\">back to the calendar</a>\n"
		writePage(w, http.StatusOK, "View Event", body)
	})

	// blank create form
	muxer.HandleFunc("GET /event/new", SessionMiddleware(as, func(w http.ResponseWriter, r *http.Request) {
		sessionModel, ok := sessionFromContext(r)
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Can't get session from middleware"))
			return
		}
		body := calendar.RenderEventForm(mo.None[model.Event](), sessionModel.Token, loc)
		writePage(w, http.StatusOK, "Create a New Event", body)
	}))

	// pre-filled edit form
	muxer.HandleFunc("GET /event/{id}/edit", SessionMiddleware(as, func(w http.ResponseWriter, r *http.Request) {
		sessionModel, ok := sessionFromContext(r)
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Can't get session from middleware"))
			return
		}
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil || id <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("The event id must be a positive integer"))
			return
		}

		eventOption, err := model.EventByID(r.Context(), as.BunDB, id)
		if err != nil {
			slog.Error("can't load event for editing", "id", id, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Can't load the event"))
			return
		}
		if eventOption.IsAbsent() {
			writePage(w, http.StatusNotFound, "Events Calendar",
				"\n\t<h2>No such event</h2>\n\t<p><a href=\"/\">back to the calendar</a></p>")
			return
		}
		body := calendar.RenderEventForm(eventOption, sessionModel.Token, loc)
		writePage(w, http.StatusOK, "Edit This Event", body)
	}))

	// create/edit submission
	muxer.HandleFunc("POST /event", SessionMiddleware(as, func(w http.ResponseWriter, r *http.Request) {
		sessionModel, ok := sessionFromContext(r)
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Can't get session from middleware"))
			return
		}
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("Invalid form submission"))
			return
		}
		if !verifyToken(sessionModel, r.PostFormValue("token")) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte("Invalid anti-forgery token"))
			return
		}

		sub := calendar.FormSubmission{
			Action:      r.PostFormValue("action"),
			ID:          r.PostFormValue("event_id"),
			Title:       r.PostFormValue("event_title"),
			Description: r.PostFormValue("event_description"),
			Start:       r.PostFormValue("event_start"),
			End:         r.PostFormValue("event_end"),
		}

		startTimer := time.Now()
		if _, err := calendar.ProcessForm(r.Context(), as.BunDB, as.When, loc, sub); err != nil {
			status := http.StatusInternalServerError
			msg := "The event can't be saved right now"
			var calErr *calendar.Error
			if errors.As(err, &calErr) {
				switch calErr.Kind {
				case calendar.KindValidation:
					status = http.StatusBadRequest
					msg = calErr.Msg
				case calendar.KindNotFound:
					status = http.StatusNotFound
					msg = calErr.Msg
				case calendar.KindStorage:
					slog.Error("can't save event", "error", err)
				}
			} else {
				slog.Error("can't save event", "error", err)
			}

			// a failed edit stays an edit: re-fill the form from the
			// posted id so resubmitting updates instead of inserting
			existing := mo.None[model.Event]()
			if rawID := strings.TrimSpace(sub.ID); rawID != "" {
				if id, idErr := strconv.ParseInt(rawID, 10, 64); idErr == nil && id > 0 {
					if option, loadErr := model.EventByID(r.Context(), as.BunDB, id); loadErr == nil {
						existing = option
					}
				}
			}

			body := fmt.Sprintf("\n\t<p class=\"errors\">%s</p>", html.EscapeString(msg)) +
				calendar.RenderEventForm(existing, sessionModel.Token, loc)
			writePage(w, status, "Events Calendar", body)
			return
		}
		as.MetricChans.ObserveDatabaseWrite(time.Since(startTimer))

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}))
}
