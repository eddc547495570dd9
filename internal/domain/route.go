package domain

import "github.com/szekelyhub/transit-permit-service/pkg/types"

// Zone classifies the route inside the city. ZoneUnset means the operator
// has not chosen yet; it fails step validation but not pricing.
type Zone string

const (
	ZoneA     Zone = "A"
	ZoneB     Zone = "B"
	ZoneUnset Zone = ""
)

// IsSet reports whether the zone has one of the real values.
func (z Zone) IsSet() bool {
	return z == ZoneA || z == ZoneB
}

// Period is the permit validity period. PeriodUnset fails step validation;
// pricing treats it as daily.
type Period string

const (
	PeriodDaily      Period = "daily"
	PeriodMonthly    Period = "monthly"
	PeriodSemiAnnual Period = "semi-annually"
	PeriodAnnual     Period = "annually"
	PeriodUnset      Period = ""
)

// IsSet reports whether the period has one of the real values.
func (p Period) IsSet() bool {
	switch p {
	case PeriodDaily, PeriodMonthly, PeriodSemiAnnual, PeriodAnnual:
		return true
	}
	return false
}

// Months returns the number of months the period spans. Daily and unset
// periods span no whole months.
func (p Period) Months() int {
	switch p {
	case PeriodMonthly:
		return 1
	case PeriodSemiAnnual:
		return 6
	case PeriodAnnual:
		return 12
	}
	return 0
}

// Route holds the route section of the application.
// StartDate is a date-only string in DateFormat.
type Route struct {
	ShipmentType string           `json:"shipmentType"`
	Description  string           `json:"description"`
	Zone         Zone             `json:"zone"`
	StartDate    string           `json:"startDate"`
	StartTime    types.TimeString `json:"startTime"`
	Period       Period           `json:"period"`
}
