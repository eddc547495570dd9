package update_section

import (
	"net/http"

	"github.com/szekelyhub/transit-permit-service/internal/api/handlers"
	"github.com/szekelyhub/transit-permit-service/internal/domain"
)

// parseSectionUpdate decodes the request body into the typed partial
// update for the named section. The section name picks the shape; the
// body is rejected if it carries fields the section does not have.
func parseSectionUpdate(section domain.Section, r *http.Request) (domain.SectionUpdate, error) {
	var update domain.SectionUpdate

	switch section {
	case domain.SectionIndividual:
		var u domain.IndividualUpdate
		if err := handlers.DecodeJSON(r, &u); err != nil {
			return update, err
		}
		update.Individual = &u
	case domain.SectionOrganization:
		var u domain.OrganizationUpdate
		if err := handlers.DecodeJSON(r, &u); err != nil {
			return update, err
		}
		update.Organization = &u
	case domain.SectionAddress:
		var u domain.AddressUpdate
		if err := handlers.DecodeJSON(r, &u); err != nil {
			return update, err
		}
		update.Address = &u
	case domain.SectionStep1Consents:
		var u domain.Step1ConsentsUpdate
		if err := handlers.DecodeJSON(r, &u); err != nil {
			return update, err
		}
		update.Step1Consents = &u
	case domain.SectionVehicle:
		var u domain.VehicleUpdate
		if err := handlers.DecodeJSON(r, &u); err != nil {
			return update, err
		}
		update.Vehicle = &u
	case domain.SectionRoute:
		var u domain.RouteUpdate
		if err := handlers.DecodeJSON(r, &u); err != nil {
			return update, err
		}
		update.Route = &u
	case domain.SectionStep2Consent:
		var u domain.ConsentUpdate
		if err := handlers.DecodeJSON(r, &u); err != nil {
			return update, err
		}
		update.Step2Consent = &u
	case domain.SectionStep3Consent:
		var u domain.ConsentUpdate
		if err := handlers.DecodeJSON(r, &u); err != nil {
			return update, err
		}
		update.Step3Consent = &u
	default:
		return update, domain.ErrUnknownSection
	}

	return update, nil
}
