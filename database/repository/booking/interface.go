package bookingRepo

import "calbook/models"

// BookingRepository is the storage contract for availability windows and
// appointments. Implementations must be safe for concurrent use, but they are
// not the guard against double booking: callers must already hold the
// per-slot lock from the reservation coordinator before AddAppointment.
type BookingRepository interface {
	// SetAvailability upserts the owner's window. Last write wins.
	SetAvailability(ownerID string, start, end int) error
	// GetAvailability returns nil when the owner has no window on record.
	GetAvailability(ownerID string) (*models.AvailabilityWindow, error)
	// IsBooked reports whether an appointment exists for the exact
	// (owner, date, slot start) cell.
	IsBooked(ownerID, date string, start int) (bool, error)
	// AddAppointment assigns an id, stores the appointment and returns the id.
	AddAppointment(ownerID string, appt *models.Appointment) (string, error)
	// ListAppointments returns the owner's appointments in insertion order.
	// An unknown owner yields an empty slice, not an error.
	ListAppointments(ownerID string) ([]models.Appointment, error)
}
