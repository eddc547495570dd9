package generate_permit

import "github.com/szekelyhub/transit-permit-service/internal/i18n"

// PermitFileName is the download name of the generated certificate.
const PermitFileName = "athaladasi_engedely.pdf"

// Request selects the session and the certificate language.
type Request struct {
	SessionID string
	Lang      i18n.Lang
}

// Response carries the rendered certificate.
type Response struct {
	FileName    string
	ContentType string
	Content     []byte
}

// qrPayload is the machine-scannable permit summary encoded in the QR code.
type qrPayload struct {
	Applicant string `json:"applicant"`
	Vehicle   string `json:"vehicle"`
	Route     string `json:"route"`
	Price     string `json:"price"`
	IssueDate string `json:"issueDate"`
	Validity  string `json:"validity"`
}
