package domain

import "errors"

var (
	// ErrEmptyUpdate is returned when a section update carries no section.
	ErrEmptyUpdate = errors.New("domain: update carries no section")

	// ErrUnknownSection is returned for a section name that is not an
	// object-valued section of the application.
	ErrUnknownSection = errors.New("domain: unknown section")

	// ErrInvalidApplicantKind is returned for an unknown applicant kind.
	ErrInvalidApplicantKind = errors.New("domain: invalid applicant kind")
)
