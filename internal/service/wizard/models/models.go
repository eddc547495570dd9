// Package models holds the wizard service response models.
package models

import (
	"github.com/szekelyhub/transit-permit-service/internal/domain"
)

// StepValidity is the per-step gating state the UI renders.
type StepValidity struct {
	Step1 bool `json:"step1"`
	Step2 bool `json:"step2"`
	Step3 bool `json:"step3"`
}

// SessionState is the full wizard state returned to the UI after every
// operation.
type SessionState struct {
	ID            string             `json:"id"`
	Step          int                `json:"step"`
	PaymentStatus string             `json:"paymentStatus"`
	Application   domain.Application `json:"application"`
	Price         int64              `json:"price"`
	Validity      StepValidity       `json:"stepValidity"`
	CanAdvance    bool               `json:"canAdvance"`
}

// FromDomainSession assembles the state response. stepValid must be the
// wizard's step predicate.
func FromDomainSession(s *domain.Session, stepValid func(*domain.Application, int) bool) *SessionState {
	validity := StepValidity{
		Step1: stepValid(&s.Application, domain.StepApplicant),
		Step2: stepValid(&s.Application, domain.StepVehicle),
		Step3: stepValid(&s.Application, domain.StepSummary),
	}

	canAdvance := false
	switch s.Step {
	case domain.StepApplicant:
		canAdvance = validity.Step1
	case domain.StepVehicle:
		canAdvance = validity.Step2
	case domain.StepSummary:
		canAdvance = validity.Step3
	case domain.StepPayment:
		canAdvance = s.IsPaid()
	}

	return &SessionState{
		ID:            s.ID,
		Step:          s.Step,
		PaymentStatus: string(s.PaymentStatus),
		Application:   s.Application,
		Price:         s.Application.Price,
		Validity:      validity,
		CanAdvance:    canAdvance,
	}
}
