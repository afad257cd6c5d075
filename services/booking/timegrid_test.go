package booking_test

import (
	"fmt"
	"testing"

	"calbook/services/booking"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"01:00", 60},
		{"09:00", 540},
		{"12:00", 720},
		{"23:00", 1380},
	}
	for _, tc := range cases {
		got, err := booking.ParseTimeOfDay(tc.in)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseTimeOfDayRejectsInvalid(t *testing.T) {
	invalid := []string{
		"24:00",
		"25:00",
		"09:30",
		"09:01",
		"10:00:00",
		"abc",
		"",
		"10",
		"10:",
		":00",
	}
	for _, in := range invalid {
		_, err := booking.ParseTimeOfDay(in)
		if err == nil {
			t.Errorf("ParseTimeOfDay(%q): expected error, got none", in)
			continue
		}
		if code := booking.ErrorCode(err); code != booking.CodeInvalidFormat {
			t.Errorf("ParseTimeOfDay(%q): error code = %q, want %q", in, code, booking.CodeInvalidFormat)
		}
	}
}

func TestFormatTimeOfDay(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{720, "12:00"},
		{1380, "23:00"},
	}
	for _, tc := range cases {
		if got := booking.FormatTimeOfDay(tc.in); got != tc.want {
			t.Errorf("FormatTimeOfDay(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTimeOfDayRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		s := fmt.Sprintf("%02d:00", h)
		parsed, err := booking.ParseTimeOfDay(s)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q): %v", s, err)
		}
		if got := booking.FormatTimeOfDay(parsed); got != s {
			t.Errorf("round trip of %q produced %q", s, got)
		}
	}
}

func TestHourlySlots(t *testing.T) {
	// 09:00-17:00 gives 8 hourly slots, 09:00 through 16:00.
	slots := booking.HourlySlots(540, 1020)
	if len(slots) != 8 {
		t.Fatalf("HourlySlots(09:00, 17:00): got %d slots, want 8", len(slots))
	}
	if slots[0] != 540 || slots[len(slots)-1] != 960 {
		t.Errorf("HourlySlots(09:00, 17:00): bounds %s..%s, want 09:00..16:00",
			booking.FormatTimeOfDay(slots[0]), booking.FormatTimeOfDay(slots[len(slots)-1]))
	}
	for i := 1; i < len(slots); i++ {
		if slots[i] != slots[i-1]+60 {
			t.Fatalf("slots not in hourly order: %v", slots)
		}
	}

	// 00:00-23:00 gives 23 slots.
	if got := len(booking.HourlySlots(0, 1380)); got != 23 {
		t.Errorf("HourlySlots(00:00, 23:00): got %d slots, want 23", got)
	}

	// A window shorter than one hour yields nothing.
	if got := booking.HourlySlots(600, 630); len(got) != 0 {
		t.Errorf("HourlySlots(10:00, 10:30): got %v, want empty", got)
	}

	// A window of exactly one hour yields one slot.
	got := booking.HourlySlots(600, 660)
	if len(got) != 1 || got[0] != 600 {
		t.Errorf("HourlySlots(10:00, 11:00): got %v, want [10:00]", got)
	}
}
