package paymentgateway

// ChargeRequest describes a single payment attempt.
type ChargeRequest struct {
	SessionID string
	AmountRON int64
	// SimulateFailure makes the gateway decline the charge. The wizard
	// exposes this so an operator can exercise both outcomes.
	SimulateFailure bool
}

// ChargeResult is the gateway's verdict on a charge.
type ChargeResult struct {
	Success bool
	Message string
}
