package domain

// Default configuration values
const (
	DefaultSlotMinutes       = 30
	DefaultBookingWindowDays = 90
	DefaultMaxSessionMinutes = 180
)

// Business validation constants
const (
	MinClientNameLength   = 2
	MaxClientNameLength   = 200
	MaxCommentLength      = 1000
	MaxCancelReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
