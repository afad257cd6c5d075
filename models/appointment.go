package models

import "time"

// Appointment represents a confirmed booking record. Immutable once created.
type Appointment struct {
	ID           string    `bson:"id" json:"id"`                       // Unique appointment identifier (UUID)
	OwnerID      string    `bson:"owner_id" json:"owner_id"`           // Calendar owner who was booked
	InviteeName  string    `bson:"invitee_name" json:"invitee_name"`   // Person who made the booking
	InviteeEmail string    `bson:"invitee_email" json:"invitee_email"` // Contact email of the invitee
	Date         string    `bson:"date" json:"date"`                   // Booking date in "YYYY-MM-DD" format
	Start        int       `bson:"start" json:"start"`                 // Slot start (minutes from midnight)
	End          int       `bson:"end" json:"end"`                     // Slot end, always Start + 60
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`       // Timestamp when the appointment was created
	Status       string    `bson:"status" json:"status"`               // Always "confirmed"
}

// StatusConfirmed is the only appointment status in use; there is no
// cancellation or rescheduling path.
const StatusConfirmed = "confirmed"
