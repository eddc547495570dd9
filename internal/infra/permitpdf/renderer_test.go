package permitpdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func sampleDocument() *Document {
	return &Document{
		Title:            "Transit Permit Application",
		ApplicantHeading: "Applicant Data",
		ApplicantLines: []Line{
			{Label: "Last Name", Value: "Kovacs"},
			{Label: "First Name", Value: "Anna"},
		},
		VehicleHeading: "Vehicle and Route Data",
		VehicleLines: []Line{
			{Label: "Make", Value: "Volvo"},
			{Label: "License Plate", Value: "MS 01 ABC"},
		},
		ValidityHeading: "Validity and Fee",
		ValidityLines: []Line{
			{Label: "Valid", Value: "2026-03-15 - 2026-04-14"},
		},
		PriceLine: "Permit price: 1900 RON",
		IssueLine: "Issued: 2026-03-20",
		QRPayload: `{"applicant":"Kovacs Anna"}`,
	}
}

func TestRenderProducesPDF(t *testing.T) {
	renderer := NewRenderer(noopLogger{})

	content, err := renderer.Render(sampleDocument())
	require.NoError(t, err)
	require.NotEmpty(t, content)
	require.Equal(t, "%PDF", string(content[:4]))
}

func TestRenderWithoutQRPayload(t *testing.T) {
	renderer := NewRenderer(noopLogger{})

	doc := sampleDocument()
	doc.QRPayload = ""

	content, err := renderer.Render(doc)
	require.NoError(t, err)
	require.NotEmpty(t, content)
}
