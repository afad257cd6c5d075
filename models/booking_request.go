package models

// AvailabilityRequest is the payload for publishing an owner's daily window.
type AvailabilityRequest struct {
	OwnerID   string `json:"calendar_owner_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"` // "HH:00"
	EndTime   string `json:"end_time" binding:"required"`   // "HH:00"
}

// AppointmentRequest is the payload for booking a single slot.
type AppointmentRequest struct {
	OwnerID       string `json:"calendar_owner_id" binding:"required"`
	InviteeName   string `json:"invitee_name" binding:"required"`
	InviteeEmail  string `json:"invitee_email" binding:"required,email"`
	Date          string `json:"date" binding:"required"` // "YYYY-MM-DD"
	SlotStartTime string `json:"slot_start_time" binding:"required"`
}

// AppointmentResponse projects an appointment with formatted time strings.
type AppointmentResponse struct {
	ID           string `json:"id"`
	InviteeName  string `json:"invitee_name"`
	InviteeEmail string `json:"invitee_email"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Status       string `json:"status"`
}

// AvailabilityResponse echoes a freshly set window back to the caller.
type AvailabilityResponse struct {
	OwnerID        string `json:"calendar_owner_id"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	AvailableHours int    `json:"available_hours"`
}
