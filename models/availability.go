package models

// AvailabilityWindow represents a calendar owner's single daily open interval.
// Start and End are minutes from midnight (e.g., 540 for 9:00 AM), always
// aligned to the top of an hour. The window is date-independent: it applies
// uniformly to every date. Setting it again replaces the previous window and
// deliberately leaves existing appointments untouched.
type AvailabilityWindow struct {
	OwnerID string `bson:"owner_id" json:"owner_id"`
	Start   int    `bson:"start" json:"start"` // minutes from midnight, inclusive
	End     int    `bson:"end" json:"end"`     // minutes from midnight, exclusive
}
