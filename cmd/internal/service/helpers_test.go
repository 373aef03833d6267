package service

import (
	"barbershop/cmd/internal/domain/memory"
	"barbershop/cmd/internal/utils/validators"
	"testing"
)

const (
	sunday   = "2025-01-05"
	monday   = "2025-01-06"
	thursday = "2025-01-09"
	friday   = "2025-01-10"
	saturday = "2025-01-11"
)

func newTestStore(t *testing.T) (*Store, *memory.Backend) {
	t.Helper()
	backend := memory.NewBackend()
	var tick int64 = 1_736_000_000_000
	store := NewStore(backend, validators.New(), WithClock(func() int64 {
		tick += 1000
		return tick
	}))
	return store, backend
}

func mustBook(t *testing.T, s *Store, day string, slot int, first, last, phone string, withScissors bool) {
	t.Helper()
	req := &AppointmentRequest{FirstName: first, LastName: last, Phone: phone, WithScissors: withScissors}
	if apierr := s.AddAppointment(day, slot, req); apierr != nil {
		t.Fatalf("booking %s slot %d failed: %v", day, slot, apierr)
	}
}
