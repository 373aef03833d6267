package service

import (
	"barbershop/cmd/internal/utils"
	"barbershop/cmd/internal/utils/apierror"
	"net/http"
	"net/url"
	"time"
)

const (
	CalendarRenderURL    = "https://calendar.google.com/calendar/render"
	DefaultCalendarTitle = "Haircut"
	DefaultBusinessName  = "Almog Asaf Barbershop"

	calendarDateLayout = "20060102T150405"
)

type CalendarLinkRequest struct {
	Title       string `json:"title" query:"title" validate:"max=200"`
	DayKey      string `json:"dayKey" query:"day" validate:"required,daykey"`
	StartHM     string `json:"startHM" query:"start" validate:"required,hm"`
	DurationMin int    `json:"durationMin" query:"duration" validate:"min=0,max=1440"`
	Details     string `json:"details" query:"details" validate:"max=2000"`
	Location    string `json:"location" query:"location" validate:"max=200"`
}

// BuildCalendarLink returns a link that opens a prefilled "create event"
// page. The stamps carry no zone and are read as the viewer's wall-clock
// time, so they are computed in UTC where no day skips or repeats an hour.
// An end past midnight rolls over into the next day.
func BuildCalendarLink(req *CalendarLinkRequest) (string, error) {
	day, err := time.Parse(utils.DayKeyLayout, req.DayKey)
	if err != nil {
		return "", err
	}
	startMinutes, err := utils.ParseHM(req.StartHM)
	if err != nil {
		return "", err
	}

	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, startMinutes, 0, 0, time.UTC)
	end := time.Date(y, m, d, 0, startMinutes+req.DurationMin, 0, 0, time.UTC)

	title := req.Title
	if title == "" {
		title = DefaultCalendarTitle
	}
	location := req.Location
	if location == "" {
		location = DefaultBusinessName
	}

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", title)
	params.Set("dates", start.Format(calendarDateLayout)+"/"+end.Format(calendarDateLayout))
	params.Set("details", req.Details)
	params.Set("location", location)
	return CalendarRenderURL + "?" + params.Encode(), nil
}

// CalendarLink validates req before building the link.
func (s *Store) CalendarLink(req *CalendarLinkRequest) (string, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return "", apierror.FromValidationError(err)
	}
	link, err := BuildCalendarLink(req)
	if err != nil {
		return "", apierror.NewSimple(http.StatusBadRequest, err.Error())
	}
	return link, nil
}
