package service

import (
	"barbershop/cmd/internal/utils/apierror"
	"regexp"
	"strings"
	"testing"
)

func seedMonth(t *testing.T, s *Store) {
	t.Helper()
	mustBook(t, s, monday, 34, "DANA ", "O\"Brien", "0501234567", false)
	mustBook(t, s, sunday, 35, "Avi", "Cohen", "", false)
	mustBook(t, s, sunday, 34, "Dana", "O\"Brien", "0501234567", true)
	mustBook(t, s, monday, 35, "avi", "COHEN", "", false)
	mustBook(t, s, monday, 36, "Noa", "Levi", "0529999999", false)
	mustBook(t, s, "2025-02-02", 34, "Other", "Month", "", false)
}

func TestAppointmentsInMonth(t *testing.T) {
	s, _ := newTestStore(t)
	seedMonth(t, s)

	rows := s.AppointmentsInMonth(2025, 1)
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows in january, got %d", len(rows))
	}

	want := []struct {
		day, time string
	}{
		{sunday, "17:00"},
		{sunday, "17:40"},
		{monday, "17:00"},
		{monday, "17:30"},
		{monday, "18:00"},
	}
	for i, w := range want {
		if rows[i].DayKey != w.day || rows[i].Time != w.time {
			t.Fatalf("row %d: expected %s %s, got %s %s", i, w.day, w.time, rows[i].DayKey, rows[i].Time)
		}
	}
	if rows[0].Duration != PremiumDurationMinutes || rows[1].Duration != StandardDurationMinutes {
		t.Fatalf("unexpected durations %d, %d", rows[0].Duration, rows[1].Duration)
	}
}

func TestBuildMonthlyCSV(t *testing.T) {
	s, _ := newTestStore(t)
	seedMonth(t, s)

	csv := s.BuildMonthlyCSV(2025, 1)
	if !strings.HasPrefix(csv, "\uFEFF") {
		t.Fatal("expected byte-order mark")
	}

	lines := strings.Split(strings.TrimPrefix(csv, "\uFEFF"), "\r\n")
	if len(lines) != 6 {
		t.Fatalf("expected header plus 5 rows, got %d lines: %q", len(lines), lines)
	}
	if lines[0] != "Date,Time,First Name,Last Name,Phone,With Scissors,Duration (min)" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if want := `2025-01-05,17:00,"Dana","O""Brien",="0501234567",Yes,40`; lines[1] != want {
		t.Fatalf("expected %q, got %q", want, lines[1])
	}
	if want := `2025-01-05,17:40,"Avi","Cohen","",No,30`; lines[2] != want {
		t.Fatalf("expected %q, got %q", want, lines[2])
	}
	if strings.Contains(csv, "Other") {
		t.Fatal("expected february appointment to be excluded")
	}
}

func TestBuildMonthlyCSVEmptyMonth(t *testing.T) {
	s, _ := newTestStore(t)

	if got := s.BuildMonthlyCSV(2030, 7); got != "\uFEFFDate,Time,First Name,Last Name,Phone,With Scissors,Duration (min)" {
		t.Fatalf("unexpected csv %q", got)
	}
}

func TestTopClientsInMonthReturnsTies(t *testing.T) {
	s, _ := newTestStore(t)
	seedMonth(t, s)

	top := s.TopClientsInMonth(2025, 1)
	if top.Max != 2 {
		t.Fatalf("expected max 2, got %d", top.Max)
	}
	if len(top.Tops) != 2 {
		t.Fatalf("expected 2 tied clients, got %d", len(top.Tops))
	}
	if top.Tops[0].Person.FirstName != "Dana" || top.Tops[1].Person.LastName != "Cohen" {
		t.Fatalf("unexpected tops %+v, %+v", top.Tops[0].Person, top.Tops[1].Person)
	}
	for _, tc := range top.Tops {
		if tc.Count != 2 {
			t.Fatalf("expected count 2, got %d", tc.Count)
		}
	}
}

func TestTopClientsInEmptyMonth(t *testing.T) {
	s, _ := newTestStore(t)

	top := s.TopClientsInMonth(2025, 3)
	if top.Max != 0 || len(top.Tops) != 0 {
		t.Fatalf("expected no clients, got %+v", top)
	}
}

func TestPerkCodeLifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	person := &PersonRequest{FirstName: "Dana", LastName: "O'Brien", Phone: "0501234567"}

	code, apierr := s.SetMonthlyTopPerkWithCode(2025, 1, person)
	if apierr != nil {
		t.Fatalf("issuing failed: %v", apierr)
	}
	if !regexp.MustCompile(`^[1-9][0-9]{5}$`).MatchString(code) {
		t.Fatalf("expected 6-digit code, got %q", code)
	}

	rec := s.MonthlyPerkCode(2025, 1)
	if rec == nil || rec.Code != code || rec.Sent || rec.IssuedAt == 0 {
		t.Fatalf("unexpected code record %+v", rec)
	}
	if p := s.MonthlyTopPerk(2025, 1); p == nil || p.FirstName != "Dana" {
		t.Fatalf("unexpected featured client %+v", p)
	}

	marked, apierr := s.MarkPerkCodeSent(2025, 1)
	if apierr != nil || !marked {
		t.Fatalf("expected code to be marked, got %v (%v)", marked, apierr)
	}
	if !s.MonthlyPerkCode(2025, 1).Sent {
		t.Fatal("expected sent flag")
	}

	// Reissuing overwrites and resets the sent flag.
	_, _ = s.SetMonthlyTopPerkWithCode(2025, 1, &PersonRequest{FirstName: "Avi"})
	rec = s.MonthlyPerkCode(2025, 1)
	if rec.Sent {
		t.Fatal("expected fresh code to be unsent")
	}
	if p := s.MonthlyTopPerk(2025, 1); p.FirstName != "Avi" {
		t.Fatalf("expected overwritten featured client, got %+v", p)
	}
}

func TestMarkPerkCodeSentWithoutCode(t *testing.T) {
	s, backend := newTestStore(t)

	before := backend.Writes()
	marked, apierr := s.MarkPerkCodeSent(2025, 4)
	if apierr != nil || marked {
		t.Fatalf("expected nothing to mark, got %v (%v)", marked, apierr)
	}
	if backend.Writes() != before {
		t.Fatal("expected no write")
	}
	if s.MonthlyTopPerk(2025, 4) != nil || s.MonthlyPerkCode(2025, 4) != nil {
		t.Fatal("expected no perk for the month")
	}
}

func TestSetMonthlyTopPerkValidates(t *testing.T) {
	s, _ := newTestStore(t)

	_, apierr := s.SetMonthlyTopPerkWithCode(2025, 1, &PersonRequest{FirstName: " "})
	if apierror.KindOf(apierr) != apierror.KindValidation {
		t.Fatalf("expected validation error, got %v", apierr)
	}
}
