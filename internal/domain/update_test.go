package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/szekelyhub/transit-permit-service/pkg/ptr"
)

func TestParseSection(t *testing.T) {
	for _, name := range []string{
		"individual", "organization", "address", "step1Consents",
		"vehicle", "route", "step2Consent", "step3Consent",
	} {
		s, err := ParseSection(name)
		require.NoError(t, err)
		require.Equal(t, Section(name), s)
	}

	_, err := ParseSection("applicantKind")
	require.ErrorIs(t, err, ErrUnknownSection)
	_, err = ParseSection("")
	require.ErrorIs(t, err, ErrUnknownSection)
}

func TestApplySectionMergesOnlyProvidedFields(t *testing.T) {
	app := DefaultApplication()
	app.Individual = Individual{
		LastName:  "Kovacs",
		FirstName: "Anna",
		Email:     "anna@example.com",
	}

	err := app.ApplySection(SectionUpdate{
		Individual: &IndividualUpdate{
			FirstName: ptr.Ptr("Eszter"),
			Phone:     ptr.Ptr("+40 740 123 456"),
		},
	})
	require.NoError(t, err)

	require.Equal(t, "Kovacs", app.Individual.LastName)
	require.Equal(t, "Eszter", app.Individual.FirstName)
	require.Equal(t, "anna@example.com", app.Individual.Email)
	require.Equal(t, "+40 740 123 456", app.Individual.Phone)
}

func TestApplySectionCanClearWithEmptyString(t *testing.T) {
	app := DefaultApplication()
	app.Vehicle.Plate = "MS 01 ABC"

	err := app.ApplySection(SectionUpdate{
		Vehicle: &VehicleUpdate{Plate: ptr.Ptr("")},
	})
	require.NoError(t, err)
	require.Equal(t, "", app.Vehicle.Plate)
}

func TestApplySectionLeavesOtherSectionsUntouched(t *testing.T) {
	app := DefaultApplication()
	app.Organization.Name = "Transilvania Cargo SRL"
	app.Address.City = "Targu Mures"
	app.Step2Consent.DataAccurate = true

	err := app.ApplySection(SectionUpdate{
		Route: &RouteUpdate{
			Description: ptr.Ptr("Gara - Combinat"),
			Zone:        ptr.Ptr(ZoneA),
		},
	})
	require.NoError(t, err)

	require.Equal(t, "Transilvania Cargo SRL", app.Organization.Name)
	require.Equal(t, "Targu Mures", app.Address.City)
	require.True(t, app.Step2Consent.DataAccurate)
	require.Equal(t, "Gara - Combinat", app.Route.Description)
	require.Equal(t, ZoneA, app.Route.Zone)
}

func TestApplySectionConsents(t *testing.T) {
	app := DefaultApplication()

	err := app.ApplySection(SectionUpdate{
		Step1Consents: &Step1ConsentsUpdate{DataAccurate: ptr.Ptr(true)},
	})
	require.NoError(t, err)
	require.True(t, app.Step1Consents.DataAccurate)
	require.False(t, app.Step1Consents.AllowContact)

	err = app.ApplySection(SectionUpdate{
		Step3Consent: &ConsentUpdate{DataAccurate: ptr.Ptr(true)},
	})
	require.NoError(t, err)
	require.True(t, app.Step3Consent.DataAccurate)
}

func TestApplySectionEmptyUpdate(t *testing.T) {
	app := DefaultApplication()
	err := app.ApplySection(SectionUpdate{})
	require.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestAffectsPrice(t *testing.T) {
	require.True(t, SectionUpdate{Vehicle: &VehicleUpdate{}}.AffectsPrice())
	require.True(t, SectionUpdate{Route: &RouteUpdate{}}.AffectsPrice())
	require.False(t, SectionUpdate{Address: &AddressUpdate{}}.AffectsPrice())
	require.False(t, SectionUpdate{Individual: &IndividualUpdate{}}.AffectsPrice())
}
