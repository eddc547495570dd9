package domain

import "time"

// PaymentStatus is the payment sub-state of the wizard, meaningful while
// the session is on the payment step.
type PaymentStatus string

const (
	PaymentIdle       PaymentStatus = "idle"
	PaymentProcessing PaymentStatus = "processing"
	PaymentSucceeded  PaymentStatus = "succeeded"
	PaymentFailed     PaymentStatus = "failed"
)

// Session is one operator's wizard session: the step cursor, the payment
// sub-state and the application record being filled in.
type Session struct {
	ID            string        `json:"id"`
	Step          int           `json:"step"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Application   Application   `json:"application"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// NewSession creates a session at step 1 with the default record.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:            id,
		Step:          MinStep,
		PaymentStatus: PaymentIdle,
		Application:   DefaultApplication(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AdvanceStep moves the cursor forward, clamped at the last step.
// Gating is the caller's responsibility; the transition only clamps.
func (s *Session) AdvanceStep() {
	if s.Step < MaxStep {
		s.Step++
	}
}

// RetreatStep moves the cursor backward, clamped at the first step.
// Never gated.
func (s *Session) RetreatStep() {
	if s.Step > MinStep {
		s.Step--
	}
}

// Reset wipes the session back to its initial state: step 1, payment
// idle, default record. This is the only exit from a failed payment.
func (s *Session) Reset(now time.Time) {
	s.Step = MinStep
	s.PaymentStatus = PaymentIdle
	s.Application = DefaultApplication()
	s.UpdatedAt = now
}

// IsPaid reports whether the payment has succeeded.
func (s *Session) IsPaid() bool {
	return s.PaymentStatus == PaymentSucceeded
}

// PaymentInFlight reports whether a payment attempt is currently running.
func (s *Session) PaymentInFlight() bool {
	return s.PaymentStatus == PaymentProcessing
}
