package paymentgateway

import "errors"

var (
	// ErrInvalidAmount is returned for a non-positive charge amount.
	ErrInvalidAmount = errors.New("paymentgateway client: invalid charge amount")
)
