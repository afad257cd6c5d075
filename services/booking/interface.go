package booking

import "calbook/models"

// BookingService defines the operations exposed to the transport layer. All
// failures are classified BookingErrors; the transport maps them to statuses.
type BookingService interface {
	SetUserAvailability(ownerID, startStr, endStr string) (*models.AvailabilityResponse, error)
	GetAvailableSlots(ownerID, forDate string) ([]string, error)
	BookSlot(req models.AppointmentRequest) (string, error)
	ListUpcomingAppointments(ownerID string) ([]models.AppointmentResponse, error)
}
