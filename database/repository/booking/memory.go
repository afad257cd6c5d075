package bookingRepo

import (
	"sync"

	"github.com/google/uuid"

	"calbook/models"
)

// MemoryBookingRepo is the reference in-memory implementation of
// BookingRepository. State is volatile and lives only as long as the process.
type MemoryBookingRepo struct {
	mu           sync.RWMutex
	availability map[string]models.AvailabilityWindow
	appointments map[string][]models.Appointment
}

// NewMemoryBookingRepo constructs an empty in-memory repository.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{
		availability: make(map[string]models.AvailabilityWindow),
		appointments: make(map[string][]models.Appointment),
	}
}

func (r *MemoryBookingRepo) SetAvailability(ownerID string, start, end int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.availability[ownerID] = models.AvailabilityWindow{OwnerID: ownerID, Start: start, End: end}
	return nil
}

func (r *MemoryBookingRepo) GetAvailability(ownerID string) (*models.AvailabilityWindow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.availability[ownerID]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *MemoryBookingRepo) IsBooked(ownerID, date string, start int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.appointments[ownerID] {
		if a.Date == date && a.Start == start {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryBookingRepo) AddAppointment(ownerID string, appt *models.Appointment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt.ID = uuid.New().String()
	appt.OwnerID = ownerID
	r.appointments[ownerID] = append(r.appointments[ownerID], *appt)
	return appt.ID, nil
}

func (r *MemoryBookingRepo) ListAppointments(ownerID string) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Appointment, len(r.appointments[ownerID]))
	copy(out, r.appointments[ownerID])
	return out, nil
}
