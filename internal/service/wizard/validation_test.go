package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
	"github.com/szekelyhub/transit-permit-service/pkg/types"
)

func completeApplication() domain.Application {
	app := domain.DefaultApplication()
	app.Individual = domain.Individual{
		LastName:   "Kovacs",
		FirstName:  "Anna",
		NationalID: "2960101123456",
		Email:      "anna@example.com",
		Phone:      "+40 740 123 456",
	}
	app.Address = domain.Address{
		Street: "Strada Garii",
		Number: "12",
		City:   "Targu Mures",
		County: "Mures",
	}
	app.Step1Consents.DataAccurate = true
	app.Vehicle = domain.Vehicle{
		Make:            "Volvo",
		Category:        "N3",
		Plate:           "MS 01 ABC",
		MaxWeightTonnes: "18",
		VIN:             "YV2A1234567890123",
		RegistrationDocument: &domain.Attachment{
			Name:      "talon.pdf",
			SizeBytes: 123456,
		},
	}
	app.Route = domain.Route{
		ShipmentType: "construction materials",
		Description:  "Gara - Combinat",
		Zone:         domain.ZoneA,
		StartDate:    "2026-03-15",
		StartTime:    types.TimeString("08:00"),
		Period:       domain.PeriodMonthly,
	}
	app.Step2Consent.DataAccurate = true
	app.Step3Consent.DataAccurate = true
	return app
}

func TestStepValidCompleteRecord(t *testing.T) {
	app := completeApplication()
	for step := domain.MinStep; step <= domain.MaxStep; step++ {
		require.True(t, StepValid(&app, step), "step %d", step)
	}
}

func TestStep1RequiresAddressAndConsent(t *testing.T) {
	app := completeApplication()
	app.Address.City = "   "
	require.False(t, StepValid(&app, domain.StepApplicant))

	app = completeApplication()
	app.Step1Consents.DataAccurate = false
	require.False(t, StepValid(&app, domain.StepApplicant))

	// AllowContact never gates.
	app = completeApplication()
	app.Step1Consents.AllowContact = false
	require.True(t, StepValid(&app, domain.StepApplicant))
}

func TestStep1ValidatesOnlyActiveApplicantSection(t *testing.T) {
	app := completeApplication()

	// Organization section is empty but inactive.
	require.True(t, StepValid(&app, domain.StepApplicant))

	app.ApplicantKind = domain.ApplicantOrganization
	require.False(t, StepValid(&app, domain.StepApplicant))

	app.Organization = domain.Organization{
		Name:           "Transilvania Cargo SRL",
		TaxID:          "RO1234567",
		RegistryNumber: "J26/123/2005",
		Email:          "office@tcargo.ro",
		Phone:          "+40 265 123 456",
		RepLastName:    "Szabo",
		RepFirstName:   "Janos",
		RepRole:        "administrator",
		RepEmail:       "janos@tcargo.ro",
		RepPhone:       "+40 740 987 654",
	}
	require.True(t, StepValid(&app, domain.StepApplicant))

	// Wiping the now-inactive individual section changes nothing.
	app.Individual = domain.Individual{}
	require.True(t, StepValid(&app, domain.StepApplicant))
}

func TestStep2RequiresVehicleRouteAndDocument(t *testing.T) {
	app := completeApplication()
	app.Vehicle.RegistrationDocument = nil
	require.False(t, StepValid(&app, domain.StepVehicle))

	app = completeApplication()
	app.Vehicle.VIN = ""
	require.False(t, StepValid(&app, domain.StepVehicle))

	app = completeApplication()
	app.Route.Zone = domain.ZoneUnset
	require.False(t, StepValid(&app, domain.StepVehicle))

	app = completeApplication()
	app.Route.Period = domain.PeriodUnset
	require.False(t, StepValid(&app, domain.StepVehicle))

	app = completeApplication()
	app.Route.StartTime = types.TimeString("")
	require.False(t, StepValid(&app, domain.StepVehicle))

	app = completeApplication()
	app.Step2Consent.DataAccurate = false
	require.False(t, StepValid(&app, domain.StepVehicle))
}

func TestStep3RequiresOnlyConsent(t *testing.T) {
	app := domain.DefaultApplication()
	require.False(t, StepValid(&app, domain.StepSummary))

	app.Step3Consent.DataAccurate = true
	require.True(t, StepValid(&app, domain.StepSummary))
}

func TestPaymentAndCompletionStepsHaveNoDataValidator(t *testing.T) {
	app := domain.DefaultApplication()
	require.True(t, StepValid(&app, domain.StepPayment))
	require.True(t, StepValid(&app, domain.StepCompletion))
}
