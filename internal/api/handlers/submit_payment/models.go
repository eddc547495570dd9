package submit_payment

// SubmitPaymentRequest is the HTTP request body. An empty body means a
// normal attempt.
type SubmitPaymentRequest struct {
	SimulateFailure bool `json:"simulateFailure"`
}
