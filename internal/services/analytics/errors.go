package analytics

// AnalyticsError is a custom error type for analytics-related errors
type AnalyticsError string

// Error implements the error interface
func (e AnalyticsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrVisitNotFound    AnalyticsError = "visit not found"
	ErrEmptyPage        AnalyticsError = "page cannot be empty"
	ErrNilConfig        AnalyticsError = "config cannot be nil"
	ErrNilVisitRepo     AnalyticsError = "visit repository cannot be nil"
	ErrNilClock         AnalyticsError = "clock cannot be nil"
	ErrNilUUIDGenerator AnalyticsError = "UUID generator cannot be nil"
)
