package utils

import "testing"

func TestFormatHM(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		1020: "17:00",
		1050: "17:30",
		1060: "17:40",
		1450: "24:10",
	}
	for minutes, want := range cases {
		if got := FormatHM(minutes); got != want {
			t.Errorf("%d: expected %s, got %s", minutes, want, got)
		}
	}
}

func TestHMToSlot(t *testing.T) {
	if got := HMToSlot(17, 0); got != 34 {
		t.Fatalf("expected 34, got %d", got)
	}
	if got := HMToSlot(19, 30); got != 39 {
		t.Fatalf("expected 39, got %d", got)
	}
	if got := SlotToMinutes(39); got != 1170 {
		t.Fatalf("expected 1170, got %d", got)
	}
}

func TestParseHM(t *testing.T) {
	if got, err := ParseHM("09:05"); err != nil || got != 545 {
		t.Fatalf("expected 545, got %d (%v)", got, err)
	}
	for _, bad := range []string{"", "9", "24:00", "12:60", "ab:cd", "1:2:3"} {
		if _, err := ParseHM(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestParseDayKeyUsesNoon(t *testing.T) {
	d, err := ParseDayKey("2025-01-05")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if d.Hour() != 12 || d.Weekday().String() != "Sunday" {
		t.Fatalf("expected sunday noon, got %v", d)
	}
	if _, err := ParseDayKey("2025-02-30"); err == nil {
		t.Fatal("expected error for impossible date")
	}
}

func TestYearMonth(t *testing.T) {
	if got := YearMonthKey(2025, 3); got != "2025-03" {
		t.Fatalf("expected 2025-03, got %s", got)
	}
	y, m, err := ParseYearMonth("2025-11")
	if err != nil || y != 2025 || m != 11 {
		t.Fatalf("expected 2025-11, got %d-%d (%v)", y, m, err)
	}
	if _, _, err := ParseYearMonth("2025-13"); err == nil {
		t.Fatal("expected error for month 13")
	}
}

type sanitizeTarget struct {
	Name  string
	Tags  []string
	Count int
}

func TestSanitize(t *testing.T) {
	v := &sanitizeTarget{Name: "  Avi ", Tags: []string{" a", "b "}, Count: 3}
	Sanitize(v)
	if v.Name != "Avi" || v.Tags[0] != "a" || v.Tags[1] != "b" || v.Count != 3 {
		t.Fatalf("unexpected result %+v", v)
	}
}
