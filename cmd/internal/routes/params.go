package routes

import (
	"barbershop/cmd/internal/utils"
	"barbershop/cmd/internal/utils/apierror"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

func parseDayParam(c echo.Context) (string, apierror.ErrorResponse) {
	day := strings.TrimSpace(c.Param("day"))
	if day == "" {
		return "", apierror.NewMissingParamError("day")
	}
	if _, err := utils.ParseDayKey(day); err != nil {
		return "", apierror.NewInvalidParamTypeError("day", "YYYY-MM-DD")
	}
	return day, nil
}

func parseSlotParam(c echo.Context) (int, apierror.ErrorResponse) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil || slot < 0 || slot > utils.MaxSlot {
		return 0, apierror.NewInvalidParamTypeError("slot", "int between 0 and 47")
	}
	return slot, nil
}

func parseMonthParam(c echo.Context) (int, int, apierror.ErrorResponse) {
	monthStr := c.Param("month") // "2025-08"
	if monthStr == "" {
		return 0, 0, apierror.NewMissingParamError("month")
	}
	year, month, err := utils.ParseYearMonth(monthStr)
	if err != nil {
		return 0, 0, apierror.NewSimple(400, "Could not understand month format")
	}
	return year, month, nil
}

func fail(c echo.Context, apierr apierror.ErrorResponse) error {
	return c.JSON(apierr.Code(), apierr)
}
