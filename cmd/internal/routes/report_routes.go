package routes

import (
	"barbershop/cmd/internal/domain/entity"
	"barbershop/cmd/internal/service"
	"barbershop/cmd/internal/utils"
	"barbershop/cmd/internal/utils/apierror"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

type ReportService interface {
	AppointmentsInMonth(year, month int) []*service.ScheduledAppointment
	BuildMonthlyCSV(year, month int) string
	TopClientsInMonth(year, month int) *service.TopClients
	SetMonthlyTopPerkWithCode(year, month int, req *service.PersonRequest) (string, apierror.ErrorResponse)
	MonthlyTopPerk(year, month int) *entity.Person
	MonthlyPerkCode(year, month int) *entity.PerkCode
	MarkPerkCodeSent(year, month int) (bool, apierror.ErrorResponse)
	CalendarLink(req *service.CalendarLinkRequest) (string, apierror.ErrorResponse)
}

type DefaultReportRoute struct {
	ReportService ReportService
	BusinessName  string
}

func NewReportDefault(reportService ReportService, businessName string) *DefaultReportRoute {
	return &DefaultReportRoute{ReportService: reportService, BusinessName: businessName}
}

func (r *DefaultReportRoute) GetMonthAppointments(c echo.Context) error {
	year, month, apierr := parseMonthParam(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	resp := echo.Map{"month": utils.YearMonthKey(year, month), "appointments": r.ReportService.AppointmentsInMonth(year, month)}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultReportRoute) GetMonthCSV(c echo.Context) error {
	year, month, apierr := parseMonthParam(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	filename := fmt.Sprintf("appointments-%s.csv", utils.YearMonthKey(year, month))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(r.ReportService.BuildMonthlyCSV(year, month)))
}

func (r *DefaultReportRoute) GetTopClients(c echo.Context) error {
	year, month, apierr := parseMonthParam(c)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusOK, r.ReportService.TopClientsInMonth(year, month))
}

func (r *DefaultReportRoute) GetPerk(c echo.Context) error {
	year, month, apierr := parseMonthParam(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	person := r.ReportService.MonthlyTopPerk(year, month)
	if person == nil {
		return fail(c, apierror.NotFoundError)
	}
	resp := echo.Map{"person": person, "code": r.ReportService.MonthlyPerkCode(year, month)}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultReportRoute) CreatePerk(c echo.Context) error {
	year, month, apierr := parseMonthParam(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	var req service.PersonRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apierror.MalformedBodyError)
	}

	code, apierr := r.ReportService.SetMonthlyTopPerkWithCode(year, month, &req)
	if apierr != nil {
		return fail(c, apierr)
	}
	resp := echo.Map{"month": utils.YearMonthKey(year, month), "code": code}
	return c.JSON(http.StatusCreated, &resp)
}

func (r *DefaultReportRoute) MarkPerkSent(c echo.Context) error {
	year, month, apierr := parseMonthParam(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	marked, apierr := r.ReportService.MarkPerkCodeSent(year, month)
	if apierr != nil {
		return fail(c, apierr)
	}
	if !marked {
		return fail(c, apierror.NotFoundError)
	}
	return c.NoContent(http.StatusOK)
}

// GetCalendarLink expects ?day=YYYY-MM-DD&start=HH:MM&duration=N plus
// optional title, details and location.
func (r *DefaultReportRoute) GetCalendarLink(c echo.Context) error {
	var req service.CalendarLinkRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apierror.MalformedBodyError)
	}
	if req.Location == "" {
		req.Location = r.BusinessName
	}

	link, apierr := r.ReportService.CalendarLink(&req)
	if apierr != nil {
		return fail(c, apierr)
	}
	resp := echo.Map{"url": link}
	return c.JSON(http.StatusOK, &resp)
}
