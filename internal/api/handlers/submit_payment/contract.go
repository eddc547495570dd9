package submit_payment

import (
	"context"

	submitPayment "github.com/szekelyhub/transit-permit-service/internal/usecase/submit_payment"
)

type SubmitPaymentUseCase interface {
	Submit(ctx context.Context, req *submitPayment.Request) (*submitPayment.Response, error)
}

// PaymentMetrics counts attempts by outcome. Nil-safe via noopMetrics.
type PaymentMetrics interface {
	ObservePaymentAttempt(outcome string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
