package documents

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"reparotec/internal/domain/entities"
	"reparotec/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer renders quote and invoice documents as single-page A4 PDFs.
type PDFRenderer struct {
	shopName string
}

var _ interfaces.IDocumentRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer(shopName string) *PDFRenderer {
	if shopName == "" {
		shopName = "ReparoTec"
	}
	return &PDFRenderer{shopName: shopName}
}

func (r *PDFRenderer) RenderQuote(_ context.Context, q entities.Quote, job entities.Job, customer entities.Customer) ([]byte, error) {
	pdf := r.newDocument(fmt.Sprintf("Quote %s", q.QuoteNumber))
	r.writeHeader(pdf, "QUOTE", q.QuoteNumber, q.IssueDate)
	r.writeParties(pdf, job, customer)
	writeItemsTable(pdf, quoteRows(q.Items))
	writeTotals(pdf, []totalRow{
		{"Subtotal", q.Subtotal},
		{fmt.Sprintf("Tax (%.1f%%)", q.TaxRate), q.TaxAmount},
		{"Total", q.TotalAmount},
	})

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Valid until %s", q.ValidUntil.Format("02 Jan 2006")), "", 1, "L", false, 0, "")

	return render(pdf)
}

func (r *PDFRenderer) RenderInvoice(_ context.Context, inv entities.Invoice, job entities.Job, customer entities.Customer) ([]byte, error) {
	pdf := r.newDocument(fmt.Sprintf("Invoice %s", inv.InvoiceNumber))
	r.writeHeader(pdf, "INVOICE", inv.InvoiceNumber, inv.CreatedAt)
	r.writeParties(pdf, job, customer)
	writeItemsTable(pdf, invoiceRows(inv.Items))

	rows := []totalRow{
		{"Subtotal", inv.Subtotal},
		{fmt.Sprintf("Tax (%.1f%%)", inv.TaxRate), inv.TaxAmount},
	}
	if inv.DiscountAmount > 0 {
		rows = append(rows, totalRow{"Discount", -inv.DiscountAmount})
	}
	rows = append(rows,
		totalRow{"Total", inv.TotalAmount},
		totalRow{"Paid", inv.PaidAmount},
		totalRow{"Balance due", inv.BalanceAmount},
	)
	writeTotals(pdf, rows)

	if inv.DueDate != nil {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 5, fmt.Sprintf("Due %s", inv.DueDate.Format("02 Jan 2006")), "", 1, "L", false, 0, "")
	}

	return render(pdf)
}

func (r *PDFRenderer) newDocument(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	return pdf
}

func (r *PDFRenderer) writeHeader(pdf *fpdf.Fpdf, kind, number string, issued time.Time) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, r.shopName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s %s", kind, number), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Issued %s", issued.Format("02 Jan 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func (r *PDFRenderer) writeParties(pdf *fpdf.Fpdf, job entities.Job, customer entities.Customer) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, customer.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	if customer.Phone != "" {
		pdf.CellFormat(0, 5, customer.Phone, "", 1, "L", false, 0, "")
	}
	if customer.Email != "" {
		pdf.CellFormat(0, 5, customer.Email, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
	pdf.CellFormat(0, 5, fmt.Sprintf("Job %s: %s %s %s", job.JobNumber, job.ApplianceBrand, job.ApplianceType, job.ApplianceModel), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

type itemRow struct {
	description string
	quantity    int
	unitPrice   float64
	lineTotal   float64
}

func quoteRows(items []entities.QuoteItem) []itemRow {
	rows := make([]itemRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, itemRow{it.Description, it.Quantity, it.UnitPrice, it.LineTotal()})
	}
	return rows
}

func invoiceRows(items []entities.InvoiceItem) []itemRow {
	rows := make([]itemRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, itemRow{it.Description, it.Quantity, it.UnitPrice, it.LineTotal()})
	}
	return rows
}

func writeItemsTable(pdf *fpdf.Fpdf, rows []itemRow) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(95, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Unit price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		pdf.CellFormat(95, 6, row.description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", row.quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", row.unitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", row.lineTotal), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)
}

type totalRow struct {
	label string
	value float64
}

func writeTotals(pdf *fpdf.Fpdf, rows []totalRow) {
	for i, row := range rows {
		style := ""
		if i == len(rows)-1 {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(145, 6, row.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", row.value), "", 1, "R", false, 0, "")
	}
}

func render(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
