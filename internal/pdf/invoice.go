// Package pdf renders invoices as A4 PDF documents.
package pdf

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/s9hmzyt46y-beep/Laimis/internal/contract"
)

const (
	pageMargin  = 15.0
	rowHeight   = 7.0
	colDesc     = 80.0
	colQty      = 20.0
	colPrice    = 25.0
	colRate     = 20.0
	colTotal    = 35.0
	labelWidth  = 35.0
	totalsLabel = 40.0
)

// RenderInvoice writes the invoice as a PDF document to w.
func RenderInvoice(w io.Writer, view *contract.InvoiceView) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	// Lithuanian text needs the Baltic code page with the core fonts.
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1257")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(120, 10, tr("SĄSKAITA FAKTŪRA"))
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 10, tr("Nr. "+view.InvoiceNumber), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, tr(statusLabel(view.Status)), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	renderHeaderField(pdf, tr, "Klientas", view.ClientName)
	if view.ClientCode != "" {
		renderHeaderField(pdf, tr, "Įmonės kodas", view.ClientCode)
	}
	if view.ClientAddress != "" {
		renderHeaderField(pdf, tr, "Adresas", view.ClientAddress)
	}
	if view.ClientEmail != "" {
		renderHeaderField(pdf, tr, "El. paštas", view.ClientEmail)
	}
	pdf.Ln(3)
	renderHeaderField(pdf, tr, "Išrašymo data", view.InvoiceDate)
	if view.DueDate != "" {
		renderHeaderField(pdf, tr, "Apmokėti iki", view.DueDate)
	}
	if view.PaymentDate != "" {
		renderHeaderField(pdf, tr, "Apmokėta", view.PaymentDate)
	}
	pdf.Ln(6)

	// Items table
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(colDesc, rowHeight, tr("Aprašymas"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(colQty, rowHeight, tr("Kiekis"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(colPrice, rowHeight, tr("Kaina"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(colRate, rowHeight, tr("PVM %"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(colTotal, rowHeight, tr("Suma"), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, it := range view.Items {
		pdf.CellFormat(colDesc, rowHeight, tr(it.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, rowHeight, it.Quantity, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colPrice, rowHeight, it.UnitPrice, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colRate, rowHeight, it.VATRate, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, rowHeight, it.Total, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	renderTotalLine(pdf, tr, "Suma be PVM", view.Subtotal, false)
	renderTotalLine(pdf, tr, "PVM", view.VATTotal, false)
	renderTotalLine(pdf, tr, "Iš viso", view.GrandTotal, true)

	if view.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, tr("Pastabos: "+view.Notes), "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering invoice %s: %w", view.InvoiceNumber, err)
	}
	return nil
}

// WriteInvoiceFile renders the invoice into a file at path.
func WriteInvoiceFile(path string, view *contract.InvoiceView) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := RenderInvoice(f, view); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderHeaderField(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.Cell(labelWidth, 5, tr(label+":"))
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr(value), "", 1, "L", false, 0, "")
}

func renderTotalLine(pdf *gofpdf.Fpdf, tr func(string) string, label, amount string, grand bool) {
	offset := colDesc + colQty + colPrice + colRate - totalsLabel
	if grand {
		pdf.SetFont("Helvetica", "B", 11)
	} else {
		pdf.SetFont("Helvetica", "", 9)
	}
	pdf.Cell(offset, 6, "")
	pdf.CellFormat(totalsLabel, 6, tr(label), "", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, 6, amount+" EUR", "", 1, "R", false, 0, "")
}

func statusLabel(status string) string {
	switch status {
	case "pending":
		return "Laukiama apmokėjimo"
	case "paid":
		return "Apmokėta"
	case "overdue":
		return "Vėluojama"
	case "cancelled":
		return "Atšaukta"
	default:
		return status
	}
}
