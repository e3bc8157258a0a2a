package analysis

// AnalysisError is a custom error type for analysis-related errors
type AnalysisError string

// Error implements the error interface
func (e AnalysisError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMatchNotFound    AnalysisError = "match not found"
	ErrSportNotFound    AnalysisError = "sport not found"
	ErrSessionNotFound  AnalysisError = "session not found"
	ErrSliceNotFound    AnalysisError = "slice not found"
	ErrEmptyMatchName   AnalysisError = "match name cannot be empty"
	ErrEmptyPlayerID    AnalysisError = "player ID cannot be empty"
	ErrEmptyEventType   AnalysisError = "event type cannot be empty"
	ErrNilConfig        AnalysisError = "config cannot be nil"
	ErrNilMatchRepo     AnalysisError = "match repository cannot be nil"
	ErrNilSportRepo     AnalysisError = "sport repository cannot be nil"
	ErrNilActionLogRepo AnalysisError = "action log repository cannot be nil"
	ErrNilClock         AnalysisError = "clock cannot be nil"
	ErrNilUUIDGenerator AnalysisError = "UUID generator cannot be nil"
)
