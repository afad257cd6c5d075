package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	bookingRepo "calbook/database/repository/booking"
	"calbook/models"
	"calbook/utils"
)

const dateLayout = "2006-01-02"

// DefaultBookingService implements BookingService on top of a
// BookingRepository and a ReservationCoordinator.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	Coordinator *ReservationCoordinator

	// Cache, when non-nil, serves slot listings from Redis. Listings
	// tolerate a slightly stale view; the write path never touches it.
	Cache    *redis.Client
	CacheTTL time.Duration

	// MaxAdvanceDays caps how far ahead a slot may be booked. Zero means
	// the default of 365 days.
	MaxAdvanceDays int

	// Now overrides the time source, for tests. Nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) today() string {
	return s.now().Format(dateLayout)
}

// SetUserAvailability parses and validates the window bounds, then replaces
// the owner's window. Replacing a window never invalidates appointments that
// already fall outside it.
func (s *DefaultBookingService) SetUserAvailability(ownerID, startStr, endStr string) (*models.AvailabilityResponse, error) {
	start, err := ParseTimeOfDay(startStr)
	if err != nil {
		return nil, err
	}
	end, err := ParseTimeOfDay(endStr)
	if err != nil {
		return nil, err
	}
	if start >= end {
		return nil, NewInvalidError("Start time must be before end time")
	}
	if err := s.Repo.SetAvailability(ownerID, start, end); err != nil {
		return nil, fmt.Errorf("failed to set availability for owner %s: %w", ownerID, err)
	}
	return &models.AvailabilityResponse{
		OwnerID:        ownerID,
		StartTime:      FormatTimeOfDay(start),
		EndTime:        FormatTimeOfDay(end),
		AvailableHours: (end - start) / 60,
	}, nil
}

// GetAvailableSlots returns the owner's open slots for a date as formatted
// "HH:00" strings in chronological order. Reads take no locks: a listing may
// lag a concurrent booking, which is acceptable for availability queries.
func (s *DefaultBookingService) GetAvailableSlots(ownerID, forDate string) ([]string, error) {
	if _, err := time.Parse(dateLayout, forDate); err != nil {
		return nil, NewInvalidFormatError(fmt.Sprintf("Invalid date: %q, expected YYYY-MM-DD", forDate))
	}
	if forDate < s.today() {
		return nil, NewInvalidError("Cannot retrieve slots for a past date")
	}

	cacheKey := slotCacheKey(ownerID, forDate)
	if cached, ok := s.cachedSlots(cacheKey); ok {
		return cached, nil
	}

	window, err := s.Repo.GetAvailability(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for owner %s: %w", ownerID, err)
	}
	if window == nil {
		return nil, NewNotFoundError("User Not Found")
	}

	available := []string{}
	for _, slot := range HourlySlots(window.Start, window.End) {
		booked, err := s.Repo.IsBooked(ownerID, forDate, slot)
		if err != nil {
			return nil, fmt.Errorf("failed to check slot %s: %w", FormatTimeOfDay(slot), err)
		}
		if !booked {
			available = append(available, FormatTimeOfDay(slot))
		}
	}

	s.storeSlots(cacheKey, available)
	return available, nil
}

// BookSlot validates the request against the owner's window and delegates the
// contested part to the coordinator. Exactly one of any number of concurrent
// attempts on the same cell gets the appointment id; the rest get a conflict.
func (s *DefaultBookingService) BookSlot(req models.AppointmentRequest) (string, error) {
	slot, err := ParseTimeOfDay(req.SlotStartTime)
	if err != nil {
		return "", err
	}
	bookDate, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return "", NewInvalidFormatError(fmt.Sprintf("Invalid date: %q, expected YYYY-MM-DD", req.Date))
	}
	if req.Date < s.today() {
		return "", NewInvalidError("Cannot book appointments in the past")
	}
	maxAdvance := s.MaxAdvanceDays
	if maxAdvance == 0 {
		maxAdvance = 365
	}
	if bookDate.After(s.now().AddDate(0, 0, maxAdvance)) {
		return "", NewInvalidError(fmt.Sprintf("Cannot book more than %d days in advance", maxAdvance))
	}

	window, err := s.Repo.GetAvailability(req.OwnerID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch availability for owner %s: %w", req.OwnerID, err)
	}
	if window == nil {
		return "", NewNotFoundError("User Not Found")
	}
	// The upper bound is exclusive: a request exactly at the window's end
	// time is rejected.
	if slot < window.Start || slot >= window.End {
		return "", NewInvalidError("Invalid time")
	}

	appt := &models.Appointment{
		InviteeName:  req.InviteeName,
		InviteeEmail: req.InviteeEmail,
		Date:         req.Date,
		Start:        slot,
		End:          slot + 60,
		CreatedAt:    s.now(),
		Status:       models.StatusConfirmed,
	}
	id, err := s.Coordinator.Reserve(s.Repo, req.OwnerID, req.Date, slot, appt)
	if err != nil {
		return "", err
	}

	s.invalidateSlots(slotCacheKey(req.OwnerID, req.Date))
	return id, nil
}

// ListUpcomingAppointments returns the owner's appointments dated today or
// later. An owner with no data yields an empty list, never a failure.
func (s *DefaultBookingService) ListUpcomingAppointments(ownerID string) ([]models.AppointmentResponse, error) {
	appts, err := s.Repo.ListAppointments(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for owner %s: %w", ownerID, err)
	}

	today := s.today()
	out := []models.AppointmentResponse{}
	for _, a := range appts {
		if a.Date < today {
			continue
		}
		out = append(out, models.AppointmentResponse{
			ID:           a.ID,
			InviteeName:  a.InviteeName,
			InviteeEmail: a.InviteeEmail,
			Date:         a.Date,
			StartTime:    FormatTimeOfDay(a.Start),
			EndTime:      FormatTimeOfDay(a.End),
			Status:       a.Status,
		})
	}
	return out, nil
}

func slotCacheKey(ownerID, date string) string {
	return fmt.Sprintf("slots:%s:%s", ownerID, date)
}

func (s *DefaultBookingService) cachedSlots(key string) ([]string, bool) {
	if s.Cache == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	data, err := s.Cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (s *DefaultBookingService) storeSlots(key string, slots []string) {
	if s.Cache == nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Set(ctx, key, data, ttl).Err(); err != nil {
		utils.GetLogger().Debug("slot cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultBookingService) invalidateSlots(key string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Debug("slot cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
