package domain

// Wizard step indexes. The wizard is a fixed five-step flow.
const (
	StepApplicant  = 1 // applicant and address data
	StepVehicle    = 2 // vehicle and route data
	StepSummary    = 3 // read-only summary plus consent
	StepPayment    = 4 // simulated payment
	StepCompletion = 5 // permit download

	MinStep = StepApplicant
	MaxStep = StepCompletion
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Pricing constants, in whole RON.
const (
	BasePrice      int64 = 50
	ZoneASurcharge int64 = 20
	ZoneBSurcharge int64 = 10

	// Weight above this threshold (tonnes) is surcharged.
	WeightThresholdTonnes   = 10.0
	WeightSurchargePerTonne = 5.0
)

// Period multipliers applied to the price subtotal.
const (
	MultiplierDaily      = 1
	MultiplierMonthly    = 20
	MultiplierSemiAnnual = 100
	MultiplierAnnual     = 180
)
