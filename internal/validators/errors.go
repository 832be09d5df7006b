package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput wraps every rule violation; the wrapped message is
	// safe to show to the user.
	ErrInvalidInput = errors.New("invalid input")

	ErrTierOutOfRange  = errors.New("service tier is outside the bracket tiers")
	ErrUnknownRodSize  = errors.New("drop rod size is not a supported metric size")
	ErrInvalidPassword = errors.New("password must be at least 8 characters")
)
