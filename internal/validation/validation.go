package validation

// Error is a user-facing input validation failure.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Field + ": " + e.Message
}

func invalid(field, message string) error {
	return &Error{Field: field, Message: message}
}
