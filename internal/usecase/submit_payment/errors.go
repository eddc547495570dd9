package submit_payment

import "errors"

var (
	ErrSessionNotFound       = errors.New("submit_payment: session not found")
	ErrWrongStep             = errors.New("submit_payment: payment is only available on the payment step")
	ErrPaymentInProgress     = errors.New("submit_payment: payment is already being processed")
	ErrAlreadyPaid           = errors.New("submit_payment: payment already succeeded")
	ErrPaymentFailed         = errors.New("submit_payment: a previous payment attempt failed, reset the application to retry")
	ErrApplicationIncomplete = errors.New("submit_payment: application is incomplete")
	ErrInternal              = errors.New("submit_payment: internal error")
)
