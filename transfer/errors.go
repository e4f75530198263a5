package transfer

import "errors"

// Error kinds returned by Service. Callers classify with errors.Is.
var (
	// ErrInvalidInput marks malformed or missing request parameters.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks a designator/date with no provider record.
	ErrNotFound = errors.New("flight not found")
	// ErrEstimationUnavailable marks a flight with neither a landing time nor
	// usable history.
	ErrEstimationUnavailable = errors.New("arrival estimation unavailable")
	// ErrProvider marks a transport or auth failure of the flight data provider.
	ErrProvider = errors.New("flight data provider failure")
)

// kindError attaches a kind to a message while keeping any cause reachable.
type kindError struct {
	kind  error
	msg   string
	cause error
}

func (e *kindError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *kindError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

func newError(kind error, msg string, cause error) error {
	return &kindError{kind: kind, msg: msg, cause: cause}
}

// Message returns the caller-facing message of an error produced by Service,
// or fallback when err carries none.
func Message(err error, fallback string) string {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.msg
	}
	return fallback
}

// Details returns the underlying cause of an error produced by Service, or
// the error text itself for foreign errors.
func Details(err error) string {
	var ke *kindError
	if errors.As(err, &ke) {
		if ke.cause != nil {
			return ke.cause.Error()
		}
		return ""
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
