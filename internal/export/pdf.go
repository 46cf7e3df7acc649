// Package export renders quote specification documents as PDF files: a
// scale drawing of the tabletop boundary, the measurements, and the full
// costing breakdown, with a QR code carrying the quote summary.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/tableforge/tableforge/internal/geometry"
	"github.com/tableforge/tableforge/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 18.0
	marginRight  = 18.0
	marginTop    = 16.0
	marginBottom = 16.0
	headerHeight = 14.0
	drawingBoxH  = 110.0
	qrSize       = 26.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// QuoteSummary is the data encoded into the document's QR code.
type QuoteSummary struct {
	QuoteID  string  `json:"quote_id"`
	Name     string  `json:"name"`
	Shape    string  `json:"shape"`
	LengthMM float64 `json:"length_mm"`
	WidthMM  float64 `json:"width_mm"`
	Material string  `json:"material"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// ExportQuotePDF writes a one-page specification document for a priced
// quote. The boundary is drawn to scale with overall dimensions annotated;
// the costing table mirrors the snapshot line for line.
func ExportQuotePDF(path string, q model.Quote, boundary geometry.Boundary) error {
	if q.Snapshot == nil {
		return fmt.Errorf("quote %q has no costing snapshot to export", q.Name)
	}
	snap := *q.Snapshot

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	renderHeader(pdf, q, snap)
	drawingBottom := renderDrawing(pdf, q.Config, boundary, marginTop+headerHeight+4)
	renderCosting(pdf, snap, drawingBottom+8)

	if err := renderQR(pdf, q, snap); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(path)
}

// renderHeader draws the document title line and the configuration summary.
func renderHeader(pdf *fpdf.Fpdf, q model.Quote, snap model.CostingSnapshot) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth, 8, fmt.Sprintf("Tabletop Specification — %s", q.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(marginLeft, marginTop+8)
	cfg := q.Config
	line := fmt.Sprintf("Quote %s | %s | %.0f x %.0f x %.0f mm | %s | %s | Qty %d",
		q.ID, cfg.Shape, cfg.LengthMM, cfg.WidthMM, cfg.ThicknessMM,
		q.MaterialName, cfg.Edge, snap.Quantity)
	pdf.CellFormat(contentWidth, 5, line, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderDrawing draws the boundary to scale inside a fixed box and returns
// the Y coordinate just below the drawing.
func renderDrawing(pdf *fpdf.Fpdf, cfg model.TabletopConfiguration, boundary geometry.Boundary, top float64) float64 {
	boxW := contentWidth
	boxH := drawingBoxH

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.2)
	pdf.Rect(marginLeft, top, boxW, boxH, "D")

	min, max := boundary.Outer.BoundingBox()
	shapeW := max.X - min.X
	shapeH := max.Y - min.Y
	if shapeW <= 0 || shapeH <= 0 {
		return top + boxH
	}

	// Scale to fit with padding, centered in the box.
	pad := 12.0
	scale := math.Min((boxW-2*pad)/shapeW, (boxH-2*pad)/shapeH)
	offsetX := marginLeft + boxW/2
	offsetY := top + boxH/2

	toPage := func(p model.Point2D) fpdf.PointType {
		return fpdf.PointType{
			X: offsetX + p.X*scale,
			Y: offsetY - p.Y*scale, // PDF Y grows downward
		}
	}

	drawPath := func(path model.Path, fill bool) {
		if len(path) < 3 {
			return
		}
		pts := make([]fpdf.PointType, len(path))
		for i, p := range path {
			pts[i] = toPage(p)
		}
		style := "D"
		if fill {
			style = "FD"
		}
		pdf.Polygon(pts, style)
	}

	pdf.SetFillColor(222, 201, 166)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.4)
	drawPath(boundary.Outer, true)

	pdf.SetFillColor(255, 255, 255)
	for _, hole := range boundary.Holes {
		drawPath(hole, true)
	}

	// Overall dimension annotations below and beside the shape
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(60, 60, 60)

	dimY := offsetY + shapeH/2*scale + 5
	label := fmt.Sprintf("%.0f mm", cfg.LengthMM)
	pdf.SetXY(offsetX-pdf.GetStringWidth(label)/2, dimY)
	pdf.CellFormat(pdf.GetStringWidth(label), 4, label, "", 0, "C", false, 0, "")

	label = fmt.Sprintf("%.0f mm", cfg.WidthMM)
	pdf.SetXY(offsetX+shapeW/2*scale+3, offsetY-2)
	pdf.CellFormat(pdf.GetStringWidth(label), 4, label, "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return top + boxH
}

// renderCosting draws the measurement summary and the cost breakdown table.
func renderCosting(pdf *fpdf.Fpdf, snap model.CostingSnapshot, top float64) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(marginLeft, top)
	meas := fmt.Sprintf("Area: %.3f m² | Edge length: %.3f m", snap.AreaM2, snap.EdgeLengthM)
	if snap.HasMaterial() {
		meas += fmt.Sprintf(" | Sheet: %.2f m² | %d piece(s)/sheet | %d sheet(s)",
			snap.SheetAreaM2, snap.PiecesPerSheet, snap.SheetsRequired)
	}
	pdf.CellFormat(contentWidth, 5, meas, "", 1, "L", false, 0, "")

	y := top + 8
	col1 := contentWidth * 0.46
	col2 := contentWidth * 0.18
	col3 := contentWidth * 0.18
	col4 := contentWidth * 0.18

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(235, 235, 235)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(col1, 6, "Item", "1", 0, "L", true, 0, "")
		pdf.CellFormat(col2, 6, "Basis qty", "1", 0, "R", true, 0, "")
		pdf.CellFormat(col3, 6, "Rate", "1", 0, "R", true, 0, "")
		pdf.CellFormat(col4, 6, "Cost", "1", 1, "R", true, 0, "")
		y += 6
	}
	row := func(label, basis, rate, cost string) {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(col1, 6, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, basis, "1", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 6, rate, "1", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, cost, "1", 1, "R", false, 0, "")
		y += 6
	}
	totalRow := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(col1+col2+col3, 6, label, "1", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, value, "1", 1, "R", false, 0, "")
		y += 6
	}

	header()
	if snap.HasMaterial() {
		row("Material",
			fmt.Sprintf("%d sheet(s)", snap.SheetsRequired),
			fmt.Sprintf("%.2f", snap.MaterialCost/float64(snap.SheetsRequired)),
			fmt.Sprintf("%.2f", snap.MaterialCost))
	}
	for _, item := range snap.LabourItems {
		row(item.Label,
			fmt.Sprintf("%.3f", item.BasisQty),
			fmt.Sprintf("%.2f %s", item.Rate, item.Basis),
			fmt.Sprintf("%.2f", item.Cost))
	}
	totalRow("Labour subtotal", fmt.Sprintf("%.2f", snap.LabourTotal), false)
	totalRow("Base cost", fmt.Sprintf("%.2f", snap.BaseCost), false)
	totalRow(fmt.Sprintf("Profit (%.1f%%)", snap.ProfitPercent), fmt.Sprintf("%.2f", snap.Profit), false)
	totalRow("Total", fmt.Sprintf("%.2f", snap.Total), true)

	if snap.Approximate {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(180, 90, 0)
		pdf.SetXY(marginLeft, y+2)
		pdf.CellFormat(contentWidth, 4,
			"Approximate figure: scaled from a previous quantity, not fully re-costed.", "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
}

// renderQR places the quote-summary QR code in the bottom-right corner.
func renderQR(pdf *fpdf.Fpdf, q model.Quote, snap model.CostingSnapshot) error {
	summary := QuoteSummary{
		QuoteID:  q.ID,
		Name:     q.Name,
		Shape:    q.Config.Shape.String(),
		LengthMM: q.Config.LengthMM,
		WidthMM:  q.Config.WidthMM,
		Material: q.MaterialName,
		Quantity: snap.Quantity,
		Total:    snap.Total,
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal quote summary: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s", q.ID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName,
		pageWidth-marginRight-qrSize, pageHeight-marginBottom-qrSize,
		qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}
