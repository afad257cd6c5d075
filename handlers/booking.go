package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"calbook/models"
	"calbook/services/booking"
	"calbook/utils"
)

// BookingHandler exposes the booking service over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// statusForError maps the service's error taxonomy to HTTP statuses.
func statusForError(err error) int {
	switch booking.ErrorCode(err) {
	case booking.CodeInvalidFormat, booking.CodeInvalid:
		return http.StatusBadRequest
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// SetAvailabilityHandler publishes a calendar owner's daily window.
func (h *BookingHandler) SetAvailabilityHandler(c *gin.Context) {
	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	ownerID := strings.TrimSpace(req.OwnerID)
	if ownerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "calendar owner ID cannot be empty")
		return
	}

	resp, err := h.Service.SetUserAvailability(ownerID, req.StartTime, req.EndTime)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to set availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Availability set successfully",
		"availability": resp,
	})
}

// GetSlotsHandler lists the open slots for an owner on a date.
func (h *BookingHandler) GetSlotsHandler(c *gin.Context) {
	ownerID := strings.TrimSpace(c.Query("calendar_owner_id"))
	forDate := c.Query("for_date")
	if ownerID == "" || forDate == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "calendar_owner_id and for_date are required")
		return
	}

	slots, err := h.Service.GetAvailableSlots(ownerID, forDate)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to fetch available slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"available_slots": slots})
}

// BookAppointmentHandler reserves a single slot for an invitee.
func (h *BookingHandler) BookAppointmentHandler(c *gin.Context) {
	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	req.OwnerID = strings.TrimSpace(req.OwnerID)
	req.InviteeName = strings.TrimSpace(req.InviteeName)
	if req.OwnerID == "" || req.InviteeName == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "calendar owner ID and invitee name cannot be empty")
		return
	}

	id, err := h.Service.BookSlot(req)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to book appointment", err.Error())
		return
	}
	h.Logger.Info("appointment booked",
		zap.String("ownerID", req.OwnerID),
		zap.String("date", req.Date),
		zap.String("slot", req.SlotStartTime),
		zap.String("appointmentID", id),
	)
	c.JSON(http.StatusOK, gin.H{
		"message":        "Appointment booked",
		"appointment_id": id,
	})
}

// ListAppointmentsHandler lists an owner's upcoming appointments. An owner
// with no data gets an empty list, not an error.
func (h *BookingHandler) ListAppointmentsHandler(c *gin.Context) {
	ownerID := strings.TrimSpace(c.Query("calendar_owner_id"))
	if ownerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "calendar_owner_id is required")
		return
	}

	appts, err := h.Service.ListUpcomingAppointments(ownerID)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, appts)
}
