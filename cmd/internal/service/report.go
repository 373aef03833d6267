package service

import (
	"barbershop/cmd/internal/domain/entity"
	"barbershop/cmd/internal/utils"
	"barbershop/cmd/internal/utils/apierror"
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/labstack/gommon/log"
)

const (
	csvBOM       = "\uFEFF"
	csvSeparator = "\r\n"
)

var csvHeader = []string{"Date", "Time", "First Name", "Last Name", "Phone", "With Scissors", "Duration (min)"}

type PersonRequest struct {
	FirstName string `json:"firstName" validate:"required,max=80"`
	LastName  string `json:"lastName" validate:"max=80"`
	Phone     string `json:"phone" validate:"max=32"`
}

// TopClient is one identity tied at the month's highest visit count.
// First is the earliest of its appointments in the month.
type TopClient struct {
	Count  int                   `json:"count"`
	Person entity.Person         `json:"person"`
	First  *ScheduledAppointment `json:"first"`
}

type TopClients struct {
	Tops []*TopClient `json:"tops"`
	Max  int          `json:"max"`
}

// AppointmentsInMonth returns every appointment of the month with its actual
// time, ordered by day and then actual time.
func (s *Store) AppointmentsInMonth(year, month int) []*ScheduledAppointment {
	doc := s.current()
	prefix := utils.YearMonthKey(year, month) + "-"

	rows := []*ScheduledAppointment{}
	for dayKey, day := range doc.Days {
		if strings.HasPrefix(dayKey, prefix) {
			rows = append(rows, scheduleDay(dayKey, day)...)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].DayKey != rows[j].DayKey {
			return rows[i].DayKey < rows[j].DayKey
		}
		return rows[i].ActualMinutes < rows[j].ActualMinutes
	})
	return rows
}

// BuildMonthlyCSV renders the month for spreadsheets: UTF-8 with BOM, CRLF
// separators, quoted names and the phone forced to text as ="<digits>".
func (s *Store) BuildMonthlyCSV(year, month int) string {
	rows := s.AppointmentsInMonth(year, month)

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for _, r := range rows {
		phone := `""`
		if r.Phone != "" {
			phone = "=" + quoteCSV(r.Phone)
		}
		withScissors := "No"
		if r.WithScissors {
			withScissors = "Yes"
		}
		lines = append(lines, strings.Join([]string{
			r.DayKey,
			r.Time,
			quoteCSV(r.FirstName),
			quoteCSV(r.LastName),
			phone,
			withScissors,
			strconv.Itoa(r.Duration),
		}, ","))
	}
	return csvBOM + strings.Join(lines, csvSeparator)
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// TopClientsInMonth counts visits per client identity (case-insensitive
// trimmed names plus trimmed phone) and returns every identity tied at the
// maximum, in order of first appearance.
func (s *Store) TopClientsInMonth(year, month int) *TopClients {
	rows := s.AppointmentsInMonth(year, month)

	byKey := map[string]*TopClient{}
	var order []string
	for _, r := range rows {
		key := clientKey(r.FirstName, r.LastName, r.Phone)
		tc, ok := byKey[key]
		if !ok {
			tc = &TopClient{
				Person: entity.Person{FirstName: r.FirstName, LastName: r.LastName, Phone: r.Phone},
				First:  r,
			}
			byKey[key] = tc
			order = append(order, key)
		}
		tc.Count++
	}

	result := &TopClients{Tops: []*TopClient{}}
	for _, tc := range byKey {
		result.Max = max(result.Max, tc.Count)
	}
	for _, key := range order {
		if byKey[key].Count == result.Max {
			result.Tops = append(result.Tops, byKey[key])
		}
	}
	return result
}

func clientKey(firstName, lastName, phone string) string {
	return strings.ToLower(strings.TrimSpace(firstName)) + "|" +
		strings.ToLower(strings.TrimSpace(lastName)) + "|" +
		strings.TrimSpace(phone)
}

// SetMonthlyTopPerkWithCode features person for the month and issues a fresh
// unsent 6-digit code, replacing any earlier one.
func (s *Store) SetMonthlyTopPerkWithCode(year, month int, req *PersonRequest) (string, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return "", apierror.FromValidationError(err)
	}

	code, err := newPerkCode()
	if err != nil {
		log.Errorf("failed to generate perk code for %s: %v", utils.YearMonthKey(year, month), err)
		return "", apierror.InternalServerError
	}

	doc := s.current()
	ym := utils.YearMonthKey(year, month)
	doc.Perks[ym] = &entity.Person{FirstName: req.FirstName, LastName: req.LastName, Phone: req.Phone}
	doc.PerkCodes[ym] = &entity.PerkCode{Code: code, IssuedAt: s.now(), Sent: false}
	if apierr := s.Save(doc); apierr != nil {
		return "", apierr
	}
	return code, nil
}

// MonthlyTopPerk returns the month's featured client, or nil.
func (s *Store) MonthlyTopPerk(year, month int) *entity.Person {
	return s.current().Perks[utils.YearMonthKey(year, month)]
}

// MonthlyPerkCode returns the month's code record, or nil.
func (s *Store) MonthlyPerkCode(year, month int) *entity.PerkCode {
	return s.current().PerkCodes[utils.YearMonthKey(year, month)]
}

// MarkPerkCodeSent flags the month's code as delivered. It reports false
// when no code was issued for the month.
func (s *Store) MarkPerkCodeSent(year, month int) (bool, apierror.ErrorResponse) {
	doc := s.current()
	rec := doc.PerkCodes[utils.YearMonthKey(year, month)]
	if rec == nil {
		return false, nil
	}
	rec.Sent = true
	if apierr := s.Save(doc); apierr != nil {
		return false, apierr
	}
	return true, nil
}

func newPerkCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", 100000+n.Int64()), nil
}
