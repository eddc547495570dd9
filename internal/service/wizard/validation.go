package wizard

import (
	"strings"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
)

// Step validators are pure predicates over the current record. They gate
// forward navigation only and never block data entry; they are cheap
// enough to evaluate on every mutation.

// StepValid reports whether the given step's data is complete. Steps
// without a data validator (payment, completion) report true.
func StepValid(app *domain.Application, step int) bool {
	switch step {
	case domain.StepApplicant:
		return step1Valid(app)
	case domain.StepVehicle:
		return step2Valid(app)
	case domain.StepSummary:
		return step3Valid(app)
	default:
		return true
	}
}

// step1Valid: required address fields, the data-accuracy consent and
// every required field of the active applicant section.
func step1Valid(app *domain.Application) bool {
	addr := app.Address
	if !allNonBlank(addr.Street, addr.Number, addr.City, addr.County) {
		return false
	}
	if !app.Step1Consents.DataAccurate {
		return false
	}
	return allNonBlank(app.Applicant().RequiredFields()...)
}

// step2Valid: vehicle identity fields, an attached registration document,
// every route field reaching a real value, and the step's consent.
func step2Valid(app *domain.Application) bool {
	v := app.Vehicle
	if !allNonBlank(v.Make, v.Category, v.Plate, v.MaxWeightTonnes, v.VIN) {
		return false
	}
	if !v.HasRegistrationDocument() {
		return false
	}

	r := app.Route
	if !allNonBlank(r.ShipmentType, r.Description, r.StartDate, r.StartTime.String()) {
		return false
	}
	if !r.Zone.IsSet() || !r.Period.IsSet() {
		return false
	}

	return app.Step2Consent.DataAccurate
}

// step3Valid: the summary step only requires its consent.
func step3Valid(app *domain.Application) bool {
	return app.Step3Consent.DataAccurate
}

func allNonBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
