package domain

// Address holds the applicant's address. Building, staircase and apartment
// are optional; the rest are required for step 1.
type Address struct {
	Street    string `json:"street"`
	Number    string `json:"number"`
	Building  string `json:"building,omitempty"`
	Staircase string `json:"staircase,omitempty"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city"`
	County    string `json:"county"`
}

// Step1Consents are the acknowledgments collected on step 1. Only
// DataAccurate gates the step; AllowContact is informational.
type Step1Consents struct {
	DataAccurate bool `json:"dataAccurate"`
	AllowContact bool `json:"allowContact"`
}

// Consent is a single data-accuracy acknowledgment gating one step.
type Consent struct {
	DataAccurate bool `json:"dataAccurate"`
}

// Application is the complete in-progress permit application: the single
// source of truth the wizard mutates section by section.
//
// Both applicant sections are always present so that switching the kind
// back and forth never loses typed data; only the section selected by
// ApplicantKind is read downstream (see Applicant).
//
// Price is derived: it is overwritten by the pricing engine after every
// change to the vehicle or route sections and must never be edited
// directly.
type Application struct {
	ApplicantKind ApplicantKind `json:"applicantKind"`
	Individual    Individual    `json:"individual"`
	Organization  Organization  `json:"organization"`
	Address       Address       `json:"address"`
	Step1Consents Step1Consents `json:"step1Consents"`
	Vehicle       Vehicle       `json:"vehicle"`
	Route         Route         `json:"route"`
	Price         int64         `json:"price"`
	Step2Consent  Consent       `json:"step2Consent"`
	Step3Consent  Consent       `json:"step3Consent"`
}

// DefaultApplication returns the documented default record: an individual
// applicant with every field empty and no consents given.
func DefaultApplication() Application {
	return Application{
		ApplicantKind: ApplicantIndividual,
	}
}

// Applicant returns the discriminated view of the active applicant section.
func (a *Application) Applicant() Applicant {
	if a.ApplicantKind == ApplicantOrganization {
		return Applicant{Kind: ApplicantOrganization, Organization: &a.Organization}
	}
	return Applicant{Kind: ApplicantIndividual, Individual: &a.Individual}
}
