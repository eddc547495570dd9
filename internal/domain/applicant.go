package domain

// ApplicantKind selects which applicant section of the application is
// authoritative.
type ApplicantKind string

const (
	ApplicantIndividual   ApplicantKind = "individual"
	ApplicantOrganization ApplicantKind = "organization"
)

// IsValid reports whether k is one of the known applicant kinds.
func (k ApplicantKind) IsValid() bool {
	return k == ApplicantIndividual || k == ApplicantOrganization
}

// ParseApplicantKind validates a kind name.
func ParseApplicantKind(s string) (ApplicantKind, error) {
	k := ApplicantKind(s)
	if !k.IsValid() {
		return "", ErrInvalidApplicantKind
	}
	return k, nil
}

// Individual holds the personal applicant section.
type Individual struct {
	LastName   string `json:"lastName"`
	FirstName  string `json:"firstName"`
	NationalID string `json:"nationalId"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// Organization holds the company applicant section, including the
// representative who files the application.
type Organization struct {
	Name           string `json:"name"`
	TaxID          string `json:"taxId"`
	RegistryNumber string `json:"registryNumber"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	RepLastName    string `json:"repLastName"`
	RepFirstName   string `json:"repFirstName"`
	RepRole        string `json:"repRole"`
	RepEmail       string `json:"repEmail"`
	RepPhone       string `json:"repPhone"`
}

// Applicant is the discriminated view of the active applicant section.
// Exactly one of Individual/Organization is non-nil, selected by Kind.
// Downstream consumers (validation, summary, storage, rendering) read the
// record through this view so the inactive section is structurally ignored.
type Applicant struct {
	Kind         ApplicantKind
	Individual   *Individual
	Organization *Organization
}

// DisplayName returns the applicant's human-readable name.
func (a Applicant) DisplayName() string {
	if a.Kind == ApplicantOrganization && a.Organization != nil {
		return a.Organization.Name
	}
	if a.Individual != nil {
		return a.Individual.LastName + " " + a.Individual.FirstName
	}
	return ""
}

// RequiredFields returns the values that must be non-blank for the active
// section to be complete.
func (a Applicant) RequiredFields() []string {
	if a.Kind == ApplicantOrganization && a.Organization != nil {
		o := a.Organization
		return []string{
			o.Name, o.TaxID, o.RegistryNumber, o.Email, o.Phone,
			o.RepLastName, o.RepFirstName, o.RepRole, o.RepEmail, o.RepPhone,
		}
	}
	if a.Individual != nil {
		i := a.Individual
		return []string{i.LastName, i.FirstName, i.NationalID, i.Email, i.Phone}
	}
	return nil
}
