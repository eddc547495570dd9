package permitpdf

// Line is one labelled value on the certificate.
type Line struct {
	Label string
	Value string
}

// Document is the render model for a permit certificate. The renderer
// lays it out; it does not read the application record directly.
type Document struct {
	Title string

	ApplicantHeading string
	ApplicantLines   []Line

	VehicleHeading string
	VehicleLines   []Line

	ValidityHeading string
	ValidityLines   []Line

	// PriceLine is rendered highlighted, below the validity block.
	PriceLine string

	// IssueLine is the footer timestamp line.
	IssueLine string

	// QRPayload is the machine-scannable content. Empty disables the
	// QR code; encoding failure degrades to a certificate without it.
	QRPayload string
}
