package chain

// Error provides constant error strings to the chain operations.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrEmptyList    = Error("list is empty")
	ErrInvalidIndex = Error("invalid index")
)
