package invoice

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/derekgf27/AntesalaReservationsDemo/internal/catalog"
	"github.com/derekgf27/AntesalaReservationsDemo/internal/pricing"
	apperrors "github.com/derekgf27/AntesalaReservationsDemo/pkg/errors"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/logger"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/model"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const (
	venueName    = "LA ANTESALA BY FUSION"
	venueAddress = "Avenida Hostos 105, Ponce, PR 00717"
	venuePhone   = "Tel. 787-428-2228"
)

// Number formats an invoice number as year and sequence, e.g. 2026-003.
func Number(year, sequence int) string {
	return fmt.Sprintf("%d-%03d", year, sequence)
}

type Generator struct {
	catalog pricing.Catalog
	log     *logger.Logger
}

func NewGenerator(cat pricing.Catalog, log *logger.Logger) *Generator {
	return &Generator{catalog: cat, log: log}
}

// Generate renders the invoice PDF: page one carries the header, client and
// event info, the itemized table and the financial summary; page two carries
// the contract terms and the signature lines. All figures come from the
// reservation's frozen pricing breakdown.
func (g *Generator) Generate(r *model.Reservation, number string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	g.writeHeader(pdf, tr, r, number)
	g.writeItemTable(pdf, tr, r)
	g.writeSummary(pdf, tr, r)
	g.writeTerms(pdf, tr)
	g.writeSignature(pdf, tr)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperrors.Internal("failed to render invoice pdf", err)
	}

	g.log.Info("Invoice generated", "reservation_id", r.ID, "number", number, "bytes", buf.Len())
	return buf.Bytes(), nil
}

func (g *Generator) writeHeader(pdf *gofpdf.Fpdf, tr func(string) string, r *model.Reservation, number string) {
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 10, venueName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, tr(venueAddress), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, venuePhone, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetDrawColor(226, 232, 240)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(4)

	if r.CompanyName != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 6, tr("Company: "+r.CompanyName), "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 6, "ISSUED TO:", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, "INVOICE NO: "+number, "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 5, tr("A: "+r.ClientName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Tel: "+r.ClientPhone), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Actividad: "+eventLabel(r)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Día: "+formatDate(r.EventDate)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Hora: "+formatTime12Hour(r.EventTime)), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func (g *Generator) writeItemTable(pdf *gofpdf.Fpdf, tr func(string) string, r *model.Reservation) {
	pdf.SetFillColor(45, 55, 72)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(110, 8, "DESCRIPTION", "", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "QTY", "", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "TOTAL", "", 1, "R", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	for _, item := range LineItems(r, g.catalog) {
		total := money(item.Amount)
		if item.Included {
			total = "Incluido"
		}

		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(110, 7, tr(item.Description), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(30, 7, item.Quantity, "", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, total, "", 1, "R", false, 0, "")

		for _, detail := range item.Details {
			pdf.SetFont("Helvetica", "", 10)
			pdf.CellFormat(110, 5, tr("  • "+detail), "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(4)
}

func (g *Generator) writeSummary(pdf *gofpdf.Fpdf, tr func(string) string, r *model.Reservation) {
	pdf.SetDrawColor(226, 232, 240)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(3)

	row := func(label, value string, size float64, style string) {
		pdf.SetFont("Helvetica", style, size)
		pdf.CellFormat(140, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, value, "", 1, "R", false, 0, "")
	}

	row("SUB-TOTAL", money(r.Pricing.SubtotalBeforeTaxes), 11, "")
	row("TAXES AND FEE", money(r.Pricing.Taxes.TotalTaxes), 11, "")
	if r.Pricing.Tip.Amount.IsPositive() {
		row("PROPINA "+r.Pricing.Tip.Percent.String()+"%", money(r.Pricing.Tip.Amount), 11, "")
	}
	row("TOTAL", money(r.Pricing.TotalCost), 13, "B")

	depositText := money(r.Pricing.DepositAmount)
	if r.DepositPaid {
		depositText += " - PAID"
	}
	pdf.SetTextColor(242, 123, 33)
	row("Deposito a Pagar", depositText, 12, "B")

	pdf.SetTextColor(72, 187, 120)
	row("Total Pagado", money(r.TotalPaid()), 12, "")
	row("Balance", money(r.RemainingBalance()), 12, "B")
	pdf.SetTextColor(0, 0, 0)
}

var sectionHeading = regexp.MustCompile(`^\d+\.`)

func (g *Generator) writeTerms(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(termsTitle), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, paragraph := range strings.Split(termsText, "\n\n") {
		if sectionHeading.MatchString(paragraph) {
			pdf.SetFont("Helvetica", "B", 11)
		} else {
			pdf.SetFont("Helvetica", "", 11)
		}
		pdf.MultiCell(0, 5, tr(paragraph), "", "L", false)
		pdf.Ln(2)
	}
}

func (g *Generator) writeSignature(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	y := pdf.GetY()
	pdf.Line(20, y, 90, y)
	pdf.Line(120, y, 190, y)
	pdf.CellFormat(100, 6, tr("Firma del Cliente"), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Fecha", "", 1, "L", false, 0, "")
}

func money(v decimal.Decimal) string {
	return "$" + v.StringFixed(2)
}

func eventLabel(r *model.Reservation) string {
	if r.EventType == "other" && r.OtherEventType != "" {
		return r.OtherEventType
	}
	if r.EventType == "" {
		return "Evento"
	}
	return catalog.EventTypeName(r.EventType)
}

func formatDate(date string) string {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

// formatTime12Hour turns a 24h HH:MM string into a 12h display time.
func formatTime12Hour(value string) string {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return value
	}
	return t.Format("3:04 PM")
}
