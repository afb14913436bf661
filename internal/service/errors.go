package service

// ValidationError marks input validation failures so handlers can surface
// them as 400s with the validator's message.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalid(err error) error {
	return &ValidationError{msg: err.Error()}
}
