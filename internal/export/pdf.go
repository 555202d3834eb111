package export

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/denmor86/ya-stitchmate/internal/models"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// PDFRenderer - квитанция в PDF (A5). Базовые шрифты PDF не содержат знака рупии, поэтому "Rs.".
type PDFRenderer struct {
	ShopName string
}

func NewPDFRenderer(shopName string) *PDFRenderer {
	if shopName == "" {
		shopName = "StitchMate"
	}
	return &PDFRenderer{ShopName: shopName}
}

func pdfMoney(d decimal.Decimal) string {
	return "Rs. " + d.StringFixed(2)
}

func (r *PDFRenderer) Render(ctx context.Context, order models.Order) (data []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("pdf backend panic: %v", p)
		}
	}()

	pdf := fpdf.New("P", "mm", "A5", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Receipt - "+order.Name, true)
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(r.ShopName+" - Receipt"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, tr(order.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if order.Phone != "" {
		pdf.CellFormat(0, 5, tr("Phone: "+order.Phone), "", 1, "L", false, 0, "")
	}
	if order.Address != "" {
		pdf.MultiCell(0, 5, tr(order.Address), "", "L", false)
	}
	meta := "Order ID: " + order.ID + "  Date: " + order.Date
	if order.Due != "" {
		meta += "  Due: " + order.Due
	}
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 5, tr(meta), "", 1, "L", false, 0, "")
	pdf.SetTextColor(17, 17, 17)
	pdf.Ln(3)

	widths := []float64{40, 40, 18, 30}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range []string{"Item", "Type", "Qty", "Amount"} {
		pdf.CellFormat(widths[i], 7, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	row := []string{"Clothing", order.Type, strconv.Itoa(order.Num), pdfMoney(order.Total)}
	for i, c := range row {
		pdf.CellFormat(widths[i], 7, tr(c), "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.Ln(2)

	pdf.CellFormat(0, 6, "Advance: "+pdfMoney(order.Advance), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Remaining: "+pdfMoney(order.Remaining), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Total: "+pdfMoney(order.Total), "", 1, "R", false, 0, "")
	pdf.Ln(3)

	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 5, "Sizes:", "", 1, "L", false, 0, "")
	pdf.SetTextColor(17, 17, 17)
	pdf.SetFont("Courier", "", 10)
	pdf.MultiCell(0, 5, tr(models.FormatSizes(order.Type, order.Sizes)), "", "L", false)
	pdf.SetFont("Helvetica", "", 10)

	if order.Additional.Has {
		pdf.Ln(2)
		pdf.CellFormat(0, 5, fmt.Sprintf("Additional garments: %d extra item(s)", order.Additional.Count), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 5, "Thank you for your business!", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to build pdf: %w", err)
	}
	return buf.Bytes(), nil
}
