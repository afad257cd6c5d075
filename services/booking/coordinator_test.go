package booking_test

import (
	"sync"
	"testing"
	"time"

	bookingRepo "calbook/database/repository/booking"
	"calbook/models"
	"calbook/services/booking"
)

func newAppointment(date string, start int) *models.Appointment {
	return &models.Appointment{
		InviteeName:  "Test Invitee",
		InviteeEmail: "invitee@example.com",
		Date:         date,
		Start:        start,
		End:          start + 60,
		CreatedAt:    time.Now(),
		Status:       models.StatusConfirmed,
	}
}

func TestReserveThenConflict(t *testing.T) {
	repo := bookingRepo.NewMemoryBookingRepo()
	rc := booking.NewReservationCoordinator()

	id, err := rc.Reserve(repo, "u1", "2030-01-02", 600, newAppointment("2030-01-02", 600))
	if err != nil {
		t.Fatalf("first Reserve: %v", err)
	}
	if id == "" {
		t.Fatal("first Reserve returned empty id")
	}

	_, err = rc.Reserve(repo, "u1", "2030-01-02", 600, newAppointment("2030-01-02", 600))
	if code := booking.ErrorCode(err); code != booking.CodeConflict {
		t.Fatalf("second Reserve: code = %q, want %q", code, booking.CodeConflict)
	}
}

func TestReserveIndependentKeys(t *testing.T) {
	repo := bookingRepo.NewMemoryBookingRepo()
	rc := booking.NewReservationCoordinator()

	// Same owner and date, different slots: both succeed.
	if _, err := rc.Reserve(repo, "u1", "2030-01-02", 600, newAppointment("2030-01-02", 600)); err != nil {
		t.Fatalf("Reserve slot 10:00: %v", err)
	}
	if _, err := rc.Reserve(repo, "u1", "2030-01-02", 660, newAppointment("2030-01-02", 660)); err != nil {
		t.Fatalf("Reserve slot 11:00: %v", err)
	}

	// Same slot for a different owner: independent cell, succeeds.
	if _, err := rc.Reserve(repo, "u2", "2030-01-02", 600, newAppointment("2030-01-02", 600)); err != nil {
		t.Fatalf("Reserve for second owner: %v", err)
	}

	// Same slot on a different date: independent cell, succeeds.
	if _, err := rc.Reserve(repo, "u1", "2030-01-03", 600, newAppointment("2030-01-03", 600)); err != nil {
		t.Fatalf("Reserve on second date: %v", err)
	}
}

func TestReserveMutualExclusion(t *testing.T) {
	repo := bookingRepo.NewMemoryBookingRepo()
	rc := booking.NewReservationCoordinator()

	const attempts = 50
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = rc.Reserve(repo, "u1", "2030-01-02", 600, newAppointment("2030-01-02", 600))
		}(i)
	}
	close(start)
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else if booking.ErrorCode(err) != booking.CodeConflict {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("successes = %d, want exactly 1", successes)
	}

	// The store agrees: exactly one appointment exists for the cell.
	appts, err := repo.ListAppointments("u1")
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if len(appts) != 1 {
		t.Fatalf("stored appointments = %d, want 1", len(appts))
	}
}
