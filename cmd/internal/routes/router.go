package routes

import (
	"barbershop/cmd/internal/utils"

	"github.com/labstack/echo/v4"
)

// Register mounts the public booking/feed routes and the admin routes, the
// latter behind an admin bearer token signed with adminSecret.
func Register(e *echo.Echo, schedule *DefaultScheduleRoute, report *DefaultReportRoute, feed *DefaultFeedRoute, adminSecret string) {
	api := e.Group("/api")

	// Booking
	api.GET("/days/:day/slots", schedule.GetSlots)
	api.GET("/days/:day/appointments", schedule.GetBusySlots)
	api.POST("/days/:day/appointments", schedule.CreateAppointment)
	api.GET("/calendar-link", report.GetCalendarLink)

	// Feed
	api.GET("/posts", feed.GetPosts)
	api.GET("/posts/:id/like", feed.GetLike)
	api.POST("/posts/:id/like", feed.ToggleLike)
	api.POST("/posts/:id/comments", feed.CreateComment)

	admin := api.Group("/admin", utils.AdminAuth(adminSecret))

	// Availability and appointments
	admin.PUT("/days/:day/slots", schedule.SetSlots)
	admin.POST("/days/:day/slots/:slot", schedule.EnableSlot)
	admin.DELETE("/days/:day/slots/:slot", schedule.DisableSlot)
	admin.GET("/days/:day/appointments", schedule.GetAppointments)
	admin.DELETE("/days/:day/appointments/:slot", schedule.DeleteAppointment)
	admin.GET("/cancellations", schedule.GetCancellations)

	// Monthly reports and perks
	admin.GET("/months/:month/appointments", report.GetMonthAppointments)
	admin.GET("/months/:month/csv", report.GetMonthCSV)
	admin.GET("/months/:month/top-clients", report.GetTopClients)
	admin.GET("/months/:month/perk", report.GetPerk)
	admin.POST("/months/:month/perk", report.CreatePerk)
	admin.POST("/months/:month/perk/sent", report.MarkPerkSent)

	// Feed moderation
	admin.POST("/posts", feed.CreatePost)
	admin.DELETE("/posts/:id", feed.DeletePost)
	admin.DELETE("/posts/:id/comments/:commentId", feed.DeleteComment)
}
