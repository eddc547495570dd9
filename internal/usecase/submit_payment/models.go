package submit_payment

import "github.com/szekelyhub/transit-permit-service/internal/domain"

// Request carries the payment submission parameters.
type Request struct {
	SessionID       string
	SimulateFailure bool
}

// Response reports the outcome of a payment attempt. Declined charges
// and persistence failures are business outcomes, not errors: the
// session stays usable and the caller reads Status.
type Response struct {
	Status  domain.PaymentStatus `json:"status"`
	Message string               `json:"message"`
	Step    int                  `json:"step"`
}
