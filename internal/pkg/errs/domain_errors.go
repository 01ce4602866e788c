package errs

// Failure taxonomy shared by every layer. Concrete errors are marked with one of
// these so callers can classify them with Is or KindOf.
var (
	ErrValidation        = New("validation failed")
	ErrNotFound          = New("not found")
	ErrInsufficientStock = New("insufficient stock")
	ErrConflict          = New("conflict")
)

type Kind string

const (
	KindValidation        Kind = "VALIDATION"
	KindNotFound          Kind = "NOT_FOUND"
	KindInsufficientStock Kind = "INSUFFICIENT_STOCK"
	KindConflict          Kind = "CONFLICT"
	KindInternal          Kind = "INTERNAL"
)

// KindOf classifies err. A nil error has no kind.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrValidation):
		return KindValidation
	case Is(err, ErrNotFound):
		return KindNotFound
	case Is(err, ErrInsufficientStock):
		return KindInsufficientStock
	case Is(err, ErrConflict):
		return KindConflict
	default:
		return KindInternal
	}
}

func Validation(msg string) error {
	return Mark(New(msg), ErrValidation)
}

func NotFound(msg string) error {
	return Mark(New(msg), ErrNotFound)
}

func Conflict(msg string) error {
	return Mark(New(msg), ErrConflict)
}
