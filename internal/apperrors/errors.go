// Package apperrors defines the error values shared by the advisor engine.
package apperrors

// Error codes surfaced to the shell.
const (
	ErrCodeBadDeckCount = iota + 1
	ErrCodeInvalidHand
	ErrCodeMissingDealerUpcard
	ErrCodeShoeExhausted
	ErrCodeInsufficientShoe
)

// AdvisorError carries a stable code alongside a human-readable message.
type AdvisorError struct {
	Code    int
	Message string
}

func (e *AdvisorError) Error() string {
	return e.Message
}

// Predefined errors. ErrShoeExhausted and ErrInsufficientShoe are
// non-fatal signals: the engine clamps/declines and stays usable.
var (
	ErrBadDeckCount        = &AdvisorError{Code: ErrCodeBadDeckCount, Message: "deck count must be between 1 and 8"}
	ErrInvalidHand         = &AdvisorError{Code: ErrCodeInvalidHand, Message: "hand is empty or already busted"}
	ErrMissingDealerUpcard = &AdvisorError{Code: ErrCodeMissingDealerUpcard, Message: "dealer up-card has not been entered"}
	ErrShoeExhausted       = &AdvisorError{Code: ErrCodeShoeExhausted, Message: "no cards of that rank left in the shoe"}
	ErrInsufficientShoe    = &AdvisorError{Code: ErrCodeInsufficientShoe, Message: "shoe is empty, cannot estimate probabilities"}
)
