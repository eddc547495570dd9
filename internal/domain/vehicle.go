package domain

// Attachment is an opaque handle to an uploaded file. The core reads its
// name and size but never interprets the payload.
type Attachment struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"sizeBytes"`
}

// Vehicle holds the vehicle section of the application.
// MaxWeightTonnes is kept as the operator typed it; the pricing engine
// parses it leniently.
type Vehicle struct {
	Make                 string      `json:"make"`
	Category             string      `json:"category"`
	Plate                string      `json:"plate"`
	MaxWeightTonnes      string      `json:"maxWeightTonnes"`
	VIN                  string      `json:"vin"`
	RegistrationDocument *Attachment `json:"registrationDocument,omitempty"`
}

// HasRegistrationDocument reports whether a registration document has been
// attached.
func (v *Vehicle) HasRegistrationDocument() bool {
	return v.RegistrationDocument != nil
}
