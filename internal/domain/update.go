package domain

import "github.com/szekelyhub/transit-permit-service/pkg/types"

// Section names the object-valued sections of the application that may be
// mutated through the merge path. Scalar fields (applicantKind, price) are
// deliberately not sections: they are replaced whole through dedicated
// operations so a partial payload can never clobber a section with a
// primitive.
type Section string

const (
	SectionIndividual    Section = "individual"
	SectionOrganization  Section = "organization"
	SectionAddress       Section = "address"
	SectionStep1Consents Section = "step1Consents"
	SectionVehicle       Section = "vehicle"
	SectionRoute         Section = "route"
	SectionStep2Consent  Section = "step2Consent"
	SectionStep3Consent  Section = "step3Consent"
)

// ParseSection validates a section name.
func ParseSection(name string) (Section, error) {
	s := Section(name)
	switch s {
	case SectionIndividual, SectionOrganization, SectionAddress,
		SectionStep1Consents, SectionVehicle, SectionRoute,
		SectionStep2Consent, SectionStep3Consent:
		return s, nil
	}
	return "", ErrUnknownSection
}

// Partial update structs: a nil field leaves the current value untouched.

type IndividualUpdate struct {
	LastName   *string `json:"lastName"`
	FirstName  *string `json:"firstName"`
	NationalID *string `json:"nationalId"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
}

type OrganizationUpdate struct {
	Name           *string `json:"name"`
	TaxID          *string `json:"taxId"`
	RegistryNumber *string `json:"registryNumber"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	RepLastName    *string `json:"repLastName"`
	RepFirstName   *string `json:"repFirstName"`
	RepRole        *string `json:"repRole"`
	RepEmail       *string `json:"repEmail"`
	RepPhone       *string `json:"repPhone"`
}

type AddressUpdate struct {
	Street    *string `json:"street"`
	Number    *string `json:"number"`
	Building  *string `json:"building"`
	Staircase *string `json:"staircase"`
	Apartment *string `json:"apartment"`
	City      *string `json:"city"`
	County    *string `json:"county"`
}

type Step1ConsentsUpdate struct {
	DataAccurate *bool `json:"dataAccurate"`
	AllowContact *bool `json:"allowContact"`
}

type ConsentUpdate struct {
	DataAccurate *bool `json:"dataAccurate"`
}

type VehicleUpdate struct {
	Make            *string `json:"make"`
	Category        *string `json:"category"`
	Plate           *string `json:"plate"`
	MaxWeightTonnes *string `json:"maxWeightTonnes"`
	VIN             *string `json:"vin"`
	// RegistrationDocument is settable only through the upload operation,
	// never through the JSON merge path.
}

type RouteUpdate struct {
	ShipmentType *string           `json:"shipmentType"`
	Description  *string           `json:"description"`
	Zone         *Zone             `json:"zone"`
	StartDate    *string           `json:"startDate"`
	StartTime    *types.TimeString `json:"startTime"`
	Period       *Period           `json:"period"`
}

// SectionUpdate carries a partial update for exactly one section.
type SectionUpdate struct {
	Individual    *IndividualUpdate
	Organization  *OrganizationUpdate
	Address       *AddressUpdate
	Step1Consents *Step1ConsentsUpdate
	Vehicle       *VehicleUpdate
	Route         *RouteUpdate
	Step2Consent  *ConsentUpdate
	Step3Consent  *ConsentUpdate
}

// Section returns the name of the populated section.
func (u SectionUpdate) Section() Section {
	switch {
	case u.Individual != nil:
		return SectionIndividual
	case u.Organization != nil:
		return SectionOrganization
	case u.Address != nil:
		return SectionAddress
	case u.Step1Consents != nil:
		return SectionStep1Consents
	case u.Vehicle != nil:
		return SectionVehicle
	case u.Route != nil:
		return SectionRoute
	case u.Step2Consent != nil:
		return SectionStep2Consent
	case u.Step3Consent != nil:
		return SectionStep3Consent
	}
	return ""
}

// AffectsPrice reports whether applying the update requires a price
// recomputation.
func (u SectionUpdate) AffectsPrice() bool {
	return u.Vehicle != nil || u.Route != nil
}

// ApplySection merges the populated partial over the named section,
// leaving every other section untouched.
func (a *Application) ApplySection(u SectionUpdate) error {
	switch {
	case u.Individual != nil:
		applyIndividual(&a.Individual, u.Individual)
	case u.Organization != nil:
		applyOrganization(&a.Organization, u.Organization)
	case u.Address != nil:
		applyAddress(&a.Address, u.Address)
	case u.Step1Consents != nil:
		if v := u.Step1Consents.DataAccurate; v != nil {
			a.Step1Consents.DataAccurate = *v
		}
		if v := u.Step1Consents.AllowContact; v != nil {
			a.Step1Consents.AllowContact = *v
		}
	case u.Vehicle != nil:
		applyVehicle(&a.Vehicle, u.Vehicle)
	case u.Route != nil:
		applyRoute(&a.Route, u.Route)
	case u.Step2Consent != nil:
		if v := u.Step2Consent.DataAccurate; v != nil {
			a.Step2Consent.DataAccurate = *v
		}
	case u.Step3Consent != nil:
		if v := u.Step3Consent.DataAccurate; v != nil {
			a.Step3Consent.DataAccurate = *v
		}
	default:
		return ErrEmptyUpdate
	}
	return nil
}

func applyIndividual(dst *Individual, u *IndividualUpdate) {
	if u.LastName != nil {
		dst.LastName = *u.LastName
	}
	if u.FirstName != nil {
		dst.FirstName = *u.FirstName
	}
	if u.NationalID != nil {
		dst.NationalID = *u.NationalID
	}
	if u.Email != nil {
		dst.Email = *u.Email
	}
	if u.Phone != nil {
		dst.Phone = *u.Phone
	}
}

func applyOrganization(dst *Organization, u *OrganizationUpdate) {
	if u.Name != nil {
		dst.Name = *u.Name
	}
	if u.TaxID != nil {
		dst.TaxID = *u.TaxID
	}
	if u.RegistryNumber != nil {
		dst.RegistryNumber = *u.RegistryNumber
	}
	if u.Email != nil {
		dst.Email = *u.Email
	}
	if u.Phone != nil {
		dst.Phone = *u.Phone
	}
	if u.RepLastName != nil {
		dst.RepLastName = *u.RepLastName
	}
	if u.RepFirstName != nil {
		dst.RepFirstName = *u.RepFirstName
	}
	if u.RepRole != nil {
		dst.RepRole = *u.RepRole
	}
	if u.RepEmail != nil {
		dst.RepEmail = *u.RepEmail
	}
	if u.RepPhone != nil {
		dst.RepPhone = *u.RepPhone
	}
}

func applyAddress(dst *Address, u *AddressUpdate) {
	if u.Street != nil {
		dst.Street = *u.Street
	}
	if u.Number != nil {
		dst.Number = *u.Number
	}
	if u.Building != nil {
		dst.Building = *u.Building
	}
	if u.Staircase != nil {
		dst.Staircase = *u.Staircase
	}
	if u.Apartment != nil {
		dst.Apartment = *u.Apartment
	}
	if u.City != nil {
		dst.City = *u.City
	}
	if u.County != nil {
		dst.County = *u.County
	}
}

func applyVehicle(dst *Vehicle, u *VehicleUpdate) {
	if u.Make != nil {
		dst.Make = *u.Make
	}
	if u.Category != nil {
		dst.Category = *u.Category
	}
	if u.Plate != nil {
		dst.Plate = *u.Plate
	}
	if u.MaxWeightTonnes != nil {
		dst.MaxWeightTonnes = *u.MaxWeightTonnes
	}
	if u.VIN != nil {
		dst.VIN = *u.VIN
	}
}

func applyRoute(dst *Route, u *RouteUpdate) {
	if u.ShipmentType != nil {
		dst.ShipmentType = *u.ShipmentType
	}
	if u.Description != nil {
		dst.Description = *u.Description
	}
	if u.Zone != nil {
		dst.Zone = *u.Zone
	}
	if u.StartDate != nil {
		dst.StartDate = *u.StartDate
	}
	if u.StartTime != nil {
		dst.StartTime = *u.StartTime
	}
	if u.Period != nil {
		dst.Period = *u.Period
	}
}
