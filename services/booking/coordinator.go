package booking

import (
	"fmt"
	"sync"

	bookingRepo "calbook/database/repository/booking"
	"calbook/models"
)

// slotKey identifies a single bookable cell.
type slotKey struct {
	ownerID string
	date    string
	start   int
}

// ReservationCoordinator serializes competing booking attempts on the same
// (owner, date, slot) cell while attempts on different cells proceed fully in
// parallel. It holds one mutex per cell ever attempted, created lazily and
// never torn down during the process lifetime. Long-running deployments may
// want reference-counted eviction of unused keys.
type ReservationCoordinator struct {
	mu    sync.Mutex // guards the lookup-or-create step only, never booking logic
	locks map[slotKey]*sync.Mutex
}

// NewReservationCoordinator constructs a coordinator with an empty lock map.
func NewReservationCoordinator() *ReservationCoordinator {
	return &ReservationCoordinator{locks: make(map[slotKey]*sync.Mutex)}
}

func (rc *ReservationCoordinator) lockFor(key slotKey) *sync.Mutex {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	lk, ok := rc.locks[key]
	if !ok {
		lk = &sync.Mutex{}
		rc.locks[key] = lk
	}
	return lk
}

// Reserve runs the duplicate check and the insert as one indivisible unit
// under the cell's lock. Among any number of simultaneous attempts for the
// same cell exactly one succeeds and returns the new appointment id; the rest
// observe a conflict. Any pre-lock check by the caller is advisory only; the
// authoritative check is the one made here, inside the held lock.
func (rc *ReservationCoordinator) Reserve(repo bookingRepo.BookingRepository, ownerID, date string, start int, appt *models.Appointment) (string, error) {
	lk := rc.lockFor(slotKey{ownerID: ownerID, date: date, start: start})
	lk.Lock()
	defer lk.Unlock()

	booked, err := repo.IsBooked(ownerID, date, start)
	if err != nil {
		return "", fmt.Errorf("duplicate check failed: %w", err)
	}
	if booked {
		return "", NewConflictError("Slot already booked")
	}

	id, err := repo.AddAppointment(ownerID, appt)
	if err != nil {
		return "", fmt.Errorf("failed to store appointment: %w", err)
	}
	return id, nil
}
