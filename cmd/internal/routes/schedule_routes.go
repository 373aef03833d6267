package routes

import (
	"barbershop/cmd/internal/domain/entity"
	"barbershop/cmd/internal/service"
	"barbershop/cmd/internal/utils/apierror"
	"net/http"

	"github.com/labstack/echo/v4"
)

type ScheduleService interface {
	AllowedSlots(dayKey string) []int
	FreeSlots(dayKey string) []int
	SetAllowedSlots(dayKey string, slots []int) apierror.ErrorResponse
	EnableSlot(dayKey string, slot int) apierror.ErrorResponse
	DisableSlot(dayKey string, slot int) apierror.ErrorResponse
	AddAppointment(dayKey string, baseSlot int, req *service.AppointmentRequest) apierror.ErrorResponse
	RemoveAppointment(dayKey string, baseSlot int) (bool, apierror.ErrorResponse)
	DayAppointments(dayKey string) []*service.ScheduledAppointment
	Cancellations() []*entity.CancellationRecord
}

type BookingRequest struct {
	BaseSlot *int `json:"baseSlot"`
	service.AppointmentRequest
}

type SlotsRequest struct {
	Slots []int `json:"slots"`
}

// BusySlot is the public view of a booked slot, without client details.
type BusySlot struct {
	BaseSlot int    `json:"baseSlot"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
}

type DefaultScheduleRoute struct {
	ScheduleService ScheduleService
}

func NewScheduleDefault(scheduleService ScheduleService) *DefaultScheduleRoute {
	return &DefaultScheduleRoute{ScheduleService: scheduleService}
}

func (s *DefaultScheduleRoute) GetSlots(c echo.Context) error {
	day, apierr := parseDayParam(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	resp := echo.Map{
		"day":     day,
		"allowed": s.ScheduleService.AllowedSlots(day),
		"free":    s.ScheduleService.FreeSlots(day),
	}
	return c.JSON(http.StatusOK, &resp)
}

func (s *DefaultScheduleRoute) SetSlots(c echo.Context) error {
	day, apierr := parseDayParam(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	var req SlotsRequest
	if err := c.Bind(&req); err != nil || req.Slots == nil {
		return fail(c, apierror.MalformedBodyError)
	}

	if apierr := s.ScheduleService.SetAllowedSlots(day, req.Slots); apierr != nil {
		return fail(c, apierr)
	}
	resp := echo.Map{"day": day, "allowed": s.ScheduleService.AllowedSlots(day)}
	return c.JSON(http.StatusOK, &resp)
}

func (s *DefaultScheduleRoute) EnableSlot(c echo.Context) error {
	return s.toggleSlot(c, s.ScheduleService.EnableSlot)
}

func (s *DefaultScheduleRoute) DisableSlot(c echo.Context) error {
	return s.toggleSlot(c, s.ScheduleService.DisableSlot)
}

func (s *DefaultScheduleRoute) toggleSlot(c echo.Context, apply func(string, int) apierror.ErrorResponse) error {
	day, apierr := parseDayParam(c)
	if apierr != nil {
		return fail(c, apierr)
	}
	slot, apierr := parseSlotParam(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	if apierr := apply(day, slot); apierr != nil {
		return fail(c, apierr)
	}
	resp := echo.Map{"day": day, "allowed": s.ScheduleService.AllowedSlots(day)}
	return c.JSON(http.StatusOK, &resp)
}

// GetBusySlots lists booked slots of a day for the booking page.
func (s *DefaultScheduleRoute) GetBusySlots(c echo.Context) error {
	day, apierr := parseDayParam(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	appts := s.ScheduleService.DayAppointments(day)
	busy := make([]*BusySlot, len(appts))
	for i, a := range appts {
		busy[i] = &BusySlot{BaseSlot: a.BaseSlot, Time: a.Time, Duration: a.Duration}
	}
	resp := echo.Map{"day": day, "busy": busy}
	return c.JSON(http.StatusOK, &resp)
}

func (s *DefaultScheduleRoute) GetAppointments(c echo.Context) error {
	day, apierr := parseDayParam(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	resp := echo.Map{"day": day, "appointments": s.ScheduleService.DayAppointments(day)}
	return c.JSON(http.StatusOK, &resp)
}

func (s *DefaultScheduleRoute) CreateAppointment(c echo.Context) error {
	day, apierr := parseDayParam(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apierror.MalformedBodyError)
	}
	if req.BaseSlot == nil {
		return fail(c, apierror.NewMissingParamError("baseSlot"))
	}

	if apierr := s.ScheduleService.AddAppointment(day, *req.BaseSlot, &req.AppointmentRequest); apierr != nil {
		return fail(c, apierr)
	}
	return c.NoContent(http.StatusCreated)
}

func (s *DefaultScheduleRoute) DeleteAppointment(c echo.Context) error {
	day, apierr := parseDayParam(c)
	if apierr != nil {
		return fail(c, apierr)
	}
	slot, apierr := parseSlotParam(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	removed, apierr := s.ScheduleService.RemoveAppointment(day, slot)
	if apierr != nil {
		return fail(c, apierr)
	}
	if !removed {
		return fail(c, apierror.NotFoundError)
	}
	return c.NoContent(http.StatusOK)
}

func (s *DefaultScheduleRoute) GetCancellations(c echo.Context) error {
	resp := echo.Map{"cancellations": s.ScheduleService.Cancellations()}
	return c.JSON(http.StatusOK, &resp)
}
