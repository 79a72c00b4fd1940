// Package export renders finished load plans to shareable documents.
package export

import (
	"fmt"
	"io"
	"math"

	"github.com/go-pdf/fpdf"

	"loadplan-service/internal/domain"
)

// cargoColor represents an RGB fill for a placed unit.
type cargoColor struct {
	R, G, B int
}

var typeColors = map[domain.CargoType]cargoColor{
	domain.CargoTypePallet: {R: 76, G: 175, B: 80},  // green
	domain.CargoTypeTank:   {R: 33, G: 150, B: 243}, // blue
	domain.CargoTypeEWC:    {R: 255, G: 152, B: 0},  // orange
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// WritePDF renders one load plan as a PDF: a top-down diagram of the
// cargo bed followed by a summary page with the load metrics.
func WritePDF(w io.Writer, planID int, plan domain.LoadPlan) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderDiagramPage(pdf, planID, plan)

	pdf.AddPage()
	renderSummaryPage(pdf, planID, plan)

	return pdf.Output(w)
}

func renderDiagramPage(pdf *fpdf.Fpdf, planID int, plan domain.LoadPlan) {
	v := plan.Vehicle

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Load Plan %d: cargo bed %.0f x %.0f cm", planID, v.LengthCm, v.WidthCm)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Units: %d | Space: %d%% | Weight: %d%% | Balance: %s",
		len(plan.Placements), plan.SpaceUtilizationPct, plan.WeightUtilizationPct, plan.Balance)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	if v.LengthCm <= 0 || v.WidthCm <= 0 {
		return
	}

	// The bed is drawn with its length along the page width, front wall
	// on the left.
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom
	scale := math.Min(drawWidth/v.LengthCm, drawHeight/v.WidthCm)

	bedW := v.LengthCm * scale
	bedH := v.WidthCm * scale
	offsetX := marginLeft + (drawWidth-bedW)/2
	offsetY := drawAreaTop

	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.Rect(offsetX, offsetY, bedW, bedH, "FD")

	// Free gaps first so cargo outlines stay on top.
	pdf.SetFillColor(250, 245, 215)
	for _, g := range plan.Gaps {
		pdf.Rect(offsetX+g.Y*scale, offsetY+g.X*scale, g.HeightCm*scale, g.WidthCm*scale, "F")
	}

	pdf.SetDrawColor(60, 60, 60)
	pdf.SetFont("Helvetica", "", 7)
	for _, p := range plan.Placements {
		c, ok := typeColors[p.Type]
		if !ok {
			c = cargoColor{R: 158, G: 158, B: 158}
		}
		pdf.SetFillColor(c.R, c.G, c.B)

		x := offsetX + p.Y*scale
		y := offsetY + p.X*scale
		w := p.HeightCm * scale
		h := p.WidthCm * scale
		if p.Type == domain.CargoTypeTank {
			pdf.Circle(x+w/2, y+h/2, w/2, "FD")
		} else {
			pdf.Rect(x, y, w, h, "FD")
		}

		pdf.SetXY(x, y+h/2-2)
		pdf.CellFormat(w, 4, p.ItemID, "", 0, "C", false, 0, "")
	}

	// Axle reference markers.
	pdf.SetDrawColor(200, 60, 60)
	for _, ref := range []float64{v.FrontAxleRef(), v.RearAxleRef()} {
		x := offsetX + ref*scale
		pdf.Line(x, offsetY, x, offsetY+bedH)
	}
}

func renderSummaryPage(pdf *fpdf.Fpdf, planID int, plan domain.LoadPlan) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight,
		fmt.Sprintf("Load Plan %d: Summary", planID), "", 0, "L", false, 0, "")

	lines := []string{
		fmt.Sprintf("Placed units: %d", len(plan.Placements)),
		fmt.Sprintf("Remaining items: %d", len(plan.RemainingItems)),
		fmt.Sprintf("Total weight: %.1f kg", plan.TotalWeightKg),
		fmt.Sprintf("Front axle load: %.1f kg (limit %.0f kg)", plan.FrontAxleLoadKg, plan.Vehicle.FrontAxleLimitKg),
		fmt.Sprintf("Rear axle load: %.1f kg (limit %.0f kg)", plan.RearAxleLoadKg, plan.Vehicle.RearAxleLimitKg),
		fmt.Sprintf("Space utilization: %d%%", plan.SpaceUtilizationPct),
		fmt.Sprintf("Weight utilization: %d%%", plan.WeightUtilizationPct),
		fmt.Sprintf("Load balance: %s", plan.Balance),
		fmt.Sprintf("Dunnage used: %d standard, %d small", plan.Dunnage.Standard, plan.Dunnage.Small),
		fmt.Sprintf("Free gaps: %d", len(plan.Gaps)),
	}

	pdf.SetFont("Helvetica", "", 11)
	y := drawAreaTop
	for _, line := range lines {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, line, "", 0, "L", false, 0, "")
		y += 8
	}

	if len(plan.RemainingItems) > 0 {
		y += 4
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, "Not placed:", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 10)
		for _, item := range plan.RemainingItems {
			pdf.SetXY(marginLeft, y)
			line := fmt.Sprintf("%s (%s/%s) x%d, %.1f kg", item.ItemID, item.Type, item.Subtype, item.Quantity, item.WeightKg)
			pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, line, "", 0, "L", false, 0, "")
			y += 6
		}
	}
}
