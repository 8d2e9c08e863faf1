package services

// ValidationError is a client-side form rejection. It never reaches the
// network; callers show Reason to the user next to Field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
