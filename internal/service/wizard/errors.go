package wizard

import "errors"

var (
	// ErrSessionNotFound is returned when the session ID is unknown.
	ErrSessionNotFound = errors.New("wizard: session not found")

	// ErrUnknownSection is returned for an update naming no known section.
	ErrUnknownSection = errors.New("wizard: unknown section")

	// ErrStepIncomplete is returned when advancing is blocked by the
	// current step's validator.
	ErrStepIncomplete = errors.New("wizard: current step is not complete")

	// ErrPaymentRequired is returned when advancing past the payment
	// step without a successful payment.
	ErrPaymentRequired = errors.New("wizard: payment has not succeeded")

	// ErrInvalidApplicantKind is returned for an unknown applicant kind.
	ErrInvalidApplicantKind = errors.New("wizard: invalid applicant kind")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("wizard: internal error")
)
