package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/utils"
)

// InvoicePrinter renders one order as a receipt PDF sized for an 80mm
// thermal page. The printed total is subtotal plus VAT only; the service
// charge stays on the stored order but never appears on the receipt.
type InvoicePrinter struct {
	RestaurantName string
	Address        string
	TRN            string
}

func NewInvoicePrinter() *InvoicePrinter {
	return &InvoicePrinter{
		RestaurantName: "Restaurant Name",
		Address:        "Address, Dubai, UAE",
		TRN:            "123456789012345",
	}
}

const (
	receiptWidth = 80.0 // mm
	receiptInner = 70.0
)

// RenderPDF writes the receipt for one order to w.
func (p *InvoicePrinter) RenderPDF(order models.Order, w io.Writer) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: receiptWidth, Ht: 200},
	})
	pdf.SetMargins(5, 5, 5)
	pdf.SetAutoPageBreak(true, 5)
	pdf.AddPage()

	// Header
	pdf.SetFont("Courier", "B", 10)
	pdf.CellFormat(receiptInner, 5, p.RestaurantName, "", 1, "C", false, 0, "")
	pdf.SetFont("Courier", "", 7)
	pdf.CellFormat(receiptInner, 3.5, p.Address, "", 1, "C", false, 0, "")
	pdf.CellFormat(receiptInner, 3.5, "TRN: "+p.TRN, "", 1, "C", false, 0, "")
	p.divider(pdf)

	// Order details
	pdf.CellFormat(receiptInner, 3.5, fmt.Sprintf("Order:    %d", order.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(receiptInner, 3.5, "Date:     "+utils.FormatDisplayTime(order.Date), "", 1, "L", false, 0, "")
	pdf.CellFormat(receiptInner, 3.5, "Customer: "+order.CustomerName, "", 1, "L", false, 0, "")
	pdf.CellFormat(receiptInner, 3.5, "Table:    "+order.TableNumber, "", 1, "L", false, 0, "")
	p.divider(pdf)

	// Items
	pdf.SetFont("Courier", "B", 7)
	pdf.CellFormat(32, 4, "Item", "", 0, "L", false, 0, "")
	pdf.CellFormat(8, 4, "Qty", "", 0, "R", false, 0, "")
	pdf.CellFormat(14, 4, "Price", "", 0, "R", false, 0, "")
	pdf.CellFormat(16, 4, "Amount", "", 1, "R", false, 0, "")
	pdf.SetFont("Courier", "", 7)
	for _, line := range order.Items {
		pdf.CellFormat(32, 3.5, line.Item.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(8, 3.5, fmt.Sprintf("%d", line.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(14, 3.5, fmt.Sprintf("%.2f", line.Item.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(16, 3.5, fmt.Sprintf("%.2f", line.Amount()), "", 1, "R", false, 0, "")
	}
	p.divider(pdf)

	// Totals: the receipt charges subtotal + VAT, nothing else
	pdf.CellFormat(receiptInner, 3.5, "Subtotal: "+utils.FormatAED(order.Subtotal), "", 1, "L", false, 0, "")
	pdf.CellFormat(receiptInner, 3.5, "VAT (5%): "+utils.FormatAED(order.VAT), "", 1, "L", false, 0, "")
	pdf.SetFont("Courier", "B", 8)
	pdf.CellFormat(receiptInner, 4.5, "Total:    "+utils.FormatAED(order.InvoiceTotal()), "", 1, "L", false, 0, "")
	p.divider(pdf)

	// Footer
	pdf.SetFont("Courier", "", 7)
	pdf.CellFormat(receiptInner, 3.5, "Thank you for dining with us!", "", 1, "C", false, 0, "")

	return pdf.Output(w)
}

func (p *InvoicePrinter) divider(pdf *fpdf.Fpdf) {
	pdf.SetFont("Courier", "", 7)
	pdf.CellFormat(receiptInner, 3, strings.Repeat("-", 40), "", 1, "C", false, 0, "")
}
