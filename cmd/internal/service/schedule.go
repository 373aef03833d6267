package service

import (
	"barbershop/cmd/internal/domain/entity"
	"barbershop/cmd/internal/utils"
	"barbershop/cmd/internal/utils/apierror"
	"slices"
	"sort"
	"time"
)

// PremiumShiftMinutes is how much later every subsequent appointment of the
// day starts for each earlier with-scissors appointment.
const PremiumShiftMinutes = 10

const (
	StandardDurationMinutes = 30
	PremiumDurationMinutes  = 40
)

type AppointmentRequest struct {
	FirstName    string `json:"firstName" validate:"required,max=80"`
	LastName     string `json:"lastName" validate:"required,max=80"`
	Phone        string `json:"phone" validate:"max=32"`
	WithScissors bool   `json:"withScissors"`
}

// ScheduledAppointment is an appointment as displayed and exported, with the
// actual time after premium shifts.
type ScheduledAppointment struct {
	entity.Appointment
	DayKey        string `json:"dayKey"`
	ActualMinutes int    `json:"actualMinutes"`
	Time          string `json:"time"`
	Duration      int    `json:"duration"`
}

// DefaultSlotsForDay returns 17:00 through 19:30 on Sunday to Thursday and
// nothing on Friday and Saturday.
func DefaultSlotsForDay(dayKey string) []int {
	day, err := utils.ParseDayKey(dayKey)
	if err != nil || day.Weekday() > time.Thursday {
		return []int{}
	}

	from, to := utils.HMToSlot(17, 0), utils.HMToSlot(19, 30)
	slots := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		slots = append(slots, i)
	}
	return slots
}

func (s *Store) AllowedSlots(dayKey string) []int {
	return allowedSlots(s.current(), dayKey)
}

// FreeSlots returns the allowed slots of the day that nobody booked yet.
func (s *Store) FreeSlots(dayKey string) []int {
	doc := s.current()
	free := []int{}
	for _, slot := range allowedSlots(doc, dayKey) {
		if findAppointment(doc.Days[dayKey], slot) < 0 {
			free = append(free, slot)
		}
	}
	return free
}

func (s *Store) SetAllowedSlots(dayKey string, slots []int) apierror.ErrorResponse {
	doc := s.current()
	doc.Availability[dayKey] = &entity.DayAvailability{Slots: normalizeSlots(slots)}
	return s.Save(doc)
}

func (s *Store) EnableSlot(dayKey string, slot int) apierror.ErrorResponse {
	doc := s.current()
	slots := allowedSlots(doc, dayKey)
	if !slices.Contains(slots, slot) {
		slots = append(slots, slot)
	}
	doc.Availability[dayKey] = &entity.DayAvailability{Slots: normalizeSlots(slots)}
	return s.Save(doc)
}

// DisableSlot removes slot from the day's availability and cancels the
// appointment booked on it, if any.
func (s *Store) DisableSlot(dayKey string, slot int) apierror.ErrorResponse {
	doc := s.current()
	remaining := slices.DeleteFunc(allowedSlots(doc, dayKey), func(v int) bool { return v == slot })
	doc.Availability[dayKey] = &entity.DayAvailability{Slots: remaining}
	s.cancel(doc, dayKey, slot, entity.CancelledByDisabled)
	return s.Save(doc)
}

// AddAppointment books baseSlot on dayKey. The slot must be allowed at
// booking time; later availability changes do not revalidate it.
func (s *Store) AddAppointment(dayKey string, baseSlot int, req *AppointmentRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	doc := s.current()
	if !slices.Contains(allowedSlots(doc, dayKey), baseSlot) {
		return apierror.SlotNotAllowedError
	}
	if findAppointment(doc.Days[dayKey], baseSlot) >= 0 {
		return apierror.SlotTakenError
	}

	doc.Days[dayKey] = append(doc.Days[dayKey], &entity.Appointment{
		BaseSlot:     baseSlot,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		WithScissors: req.WithScissors,
		CreatedAt:    s.now(),
	})
	return s.Save(doc)
}

// RemoveAppointment cancels the appointment on (dayKey, baseSlot) and
// reports whether there was one.
func (s *Store) RemoveAppointment(dayKey string, baseSlot int) (bool, apierror.ErrorResponse) {
	doc := s.current()
	if !s.cancel(doc, dayKey, baseSlot, entity.CancelledByAdmin) {
		return false, nil
	}
	if apierr := s.Save(doc); apierr != nil {
		return false, apierr
	}
	return true, nil
}

// DayAppointments lists the day's appointments ordered by actual time.
func (s *Store) DayAppointments(dayKey string) []*ScheduledAppointment {
	return scheduleDay(dayKey, s.current().Days[dayKey])
}

// Cancellations returns the cancellation log, oldest first.
func (s *Store) Cancellations() []*entity.CancellationRecord {
	return s.current().Logs.Cancellations
}

// ActualMinutes is the appointment's start in minutes past midnight, pushed
// PremiumShiftMinutes later for every with-scissors appointment booked on
// an earlier slot of the same day.
func ActualMinutes(appt *entity.Appointment, day []*entity.Appointment) int {
	shifts := 0
	for _, other := range day {
		if other.BaseSlot < appt.BaseSlot && other.WithScissors {
			shifts++
		}
	}
	return utils.SlotToMinutes(appt.BaseSlot) + shifts*PremiumShiftMinutes
}

// ActualTime is ActualMinutes formatted as HH:MM.
func ActualTime(appt *entity.Appointment, day []*entity.Appointment) string {
	return utils.FormatHM(ActualMinutes(appt, day))
}

func DurationMinutes(appt *entity.Appointment) int {
	if appt.WithScissors {
		return PremiumDurationMinutes
	}
	return StandardDurationMinutes
}

func scheduleDay(dayKey string, day []*entity.Appointment) []*ScheduledAppointment {
	out := make([]*ScheduledAppointment, 0, len(day))
	for _, a := range day {
		minutes := ActualMinutes(a, day)
		out = append(out, &ScheduledAppointment{
			Appointment:   *a,
			DayKey:        dayKey,
			ActualMinutes: minutes,
			Time:          utils.FormatHM(minutes),
			Duration:      DurationMinutes(a),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ActualMinutes < out[j].ActualMinutes
	})
	return out
}

// cancel removes the appointment on (dayKey, slot), logs the cancellation
// and drops the day entry once it is empty.
func (s *Store) cancel(doc *entity.Document, dayKey string, slot int, by string) bool {
	day := doc.Days[dayKey]
	i := findAppointment(day, slot)
	if i < 0 {
		return false
	}

	removed := day[i]
	doc.Days[dayKey] = slices.Delete(day, i, i+1)
	if len(doc.Days[dayKey]) == 0 {
		delete(doc.Days, dayKey)
	}
	doc.Logs.Cancellations = append(doc.Logs.Cancellations, &entity.CancellationRecord{
		Timestamp:   s.now(),
		DayKey:      dayKey,
		BaseSlot:    slot,
		By:          by,
		Appointment: removed,
	})
	return true
}

func allowedSlots(doc *entity.Document, dayKey string) []int {
	if rec, ok := doc.Availability[dayKey]; ok && rec != nil && rec.Slots != nil {
		slots := slices.Clone(rec.Slots)
		slices.Sort(slots)
		return slots
	}
	return DefaultSlotsForDay(dayKey)
}

// normalizeSlots de-duplicates, drops out-of-range values and sorts.
func normalizeSlots(slots []int) []int {
	out := make([]int, 0, len(slots))
	for _, slot := range slots {
		if slot >= 0 && slot <= utils.MaxSlot {
			out = append(out, slot)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func findAppointment(day []*entity.Appointment, slot int) int {
	return slices.IndexFunc(day, func(a *entity.Appointment) bool { return a.BaseSlot == slot })
}
