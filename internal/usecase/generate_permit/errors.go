package generate_permit

import "errors"

var (
	ErrSessionNotFound = errors.New("generate_permit: session not found")
	ErrNotPaid         = errors.New("generate_permit: permit is only available after successful payment")
	ErrInternal        = errors.New("generate_permit: internal error")
)
