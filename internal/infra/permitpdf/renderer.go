// Package permitpdf renders permit certificates as PDF files with an
// embedded QR code.
package permitpdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// Logger is the logging contract of the renderer.
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Renderer produces PDF certificates from a Document.
type Renderer struct {
	log Logger
}

func NewRenderer(log Logger) *Renderer {
	return &Renderer{log: log}
}

const qrImageSize = 256 // pixels

// Render lays out the certificate and returns the PDF bytes. A QR
// encoding failure is logged and the certificate is produced without the
// code; only PDF assembly errors fail the render.
func (r *Renderer) Render(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 20, doc.Title, "", 1, "C", false, 0, "")

	// QR code in the top-right corner, if it can be generated.
	if doc.QRPayload != "" {
		if png, err := qrcode.Encode(doc.QRPayload, qrcode.High, qrImageSize); err != nil {
			r.log.Warn("permitpdf: QR code generation failed, rendering without code: %v", err)
		} else {
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("permit-qr", opts, bytes.NewReader(png))
			pdf.ImageOptions("permit-qr", 150, 30, 50, 50, false, opts, 0, "")
		}
	}

	y := r.section(pdf, 40.0, doc.ApplicantHeading, doc.ApplicantLines)
	y = r.section(pdf, y+10, doc.VehicleHeading, doc.VehicleLines)
	y = r.section(pdf, y+10, doc.ValidityHeading, doc.ValidityLines)

	// Price, highlighted.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(255, 0, 0)
	pdf.SetXY(20, y+4)
	pdf.CellFormat(0, 8, doc.PriceLine, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	// Issue timestamp footer.
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 280)
	pdf.CellFormat(0, 6, doc.IssueLine, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		r.log.Error("permitpdf: PDF assembly failed: %v", err)
		return nil, fmt.Errorf("render permit pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// section writes a heading and its labelled lines starting at the given
// vertical position and returns the position after the last line.
func (r *Renderer) section(pdf *gofpdf.Fpdf, startY float64, heading string, lines []Line) float64 {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(20, startY)
	pdf.CellFormat(0, 8, heading, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	y := startY + 10
	for _, line := range lines {
		pdf.SetXY(20, y)
		pdf.CellFormat(0, 7, fmt.Sprintf("%s: %s", line.Label, line.Value), "", 1, "L", false, 0, "")
		y += 7
	}
	return y
}
