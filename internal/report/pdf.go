package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin    = 14.0
	newPageAfterY = 250.0
)

// RenderPDF writes rep as an A4 PDF document to w.
func RenderPDF(w io.Writer, rep Diet) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, 20, pageMargin)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	generated := rep.GeneratedAt.Format(time.DateOnly)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 10, fmt.Sprintf("Generated on %s - Page %d of {nb}", generated, pdf.PageNo()),
			"", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 10, "Diet Plan", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 8, tr(rep.Diet.Name), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	u := rep.Profile.UserData
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Profile:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		"Name: " + u.Name,
		fmt.Sprintf("Age: %s years | Weight: %s kg | Height: %s cm", num(u.Age), num(u.Weight), num(u.Height)),
		"Goal: " + GoalLabel(u.Goal),
		fmt.Sprintf("Activity level: %d/7", u.ActivityLevel),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Daily Nutrition Summary:", "", 1, "L", false, 0, "")
	summary := [][]string{{"Nutrient", "Goal", "Consumed", "Difference"}}
	for _, n := range rep.Nutrients {
		summary = append(summary, []string{
			n.Nutrient,
			num(n.Goal) + " " + n.Unit,
			num(n.Consumed) + " " + n.Unit,
			num(n.Difference) + " " + n.Unit,
		})
	}
	table(pdf, tr, []float64{50, 40, 40, 40}, summary, rgb{34, 197, 94}, rgb{0, 0, 0}, 9)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Meal Details:", "", 1, "L", false, 0, "")
	for _, sec := range rep.Meals {
		if pdf.GetY() > newPageAfterY {
			pdf.AddPage()
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, MealLabel(sec.Type), "", 1, "L", false, 0, "")
		if len(sec.Items) == 0 {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 6, "(no foods)", "", 1, "L", false, 0, "")
			pdf.Ln(4)
			continue
		}
		rows := [][]string{{"Food", "Quantity", "Calories", "Protein", "Carbs", "Fat"}}
		for _, it := range sec.Items {
			if !it.Found {
				rows = append(rows, []string{it.Name, "-", "-", "-", "-", "-"})
				continue
			}
			rows = append(rows, []string{
				it.Name,
				num(it.Quantity) + " " + UnitLabel(it.Unit),
				num(it.Calories) + " kcal",
				num(it.Protein) + " g",
				num(it.Carbs) + " g",
				num(it.Fat) + " g",
			})
		}
		rows = append(rows, []string{
			"TOTAL",
			"",
			num(sec.Totals.Calories) + " kcal",
			num(sec.Totals.Protein) + " g",
			num(sec.Totals.Carbs) + " g",
			num(sec.Totals.Fat) + " g",
		})
		table(pdf, tr, []float64{62, 24, 26, 24, 22, 22}, rows, rgb{75, 85, 99}, rgb{255, 255, 255}, 8)
		pdf.Ln(6)
	}

	return pdf.Output(w)
}

type rgb struct{ r, g, b int }

// table draws rows with the first row as a filled header.
func table(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, rows [][]string, head, headText rgb, size float64) {
	const rowHeight = 6
	for i, row := range rows {
		fill := i == 0
		if fill {
			pdf.SetFont("Helvetica", "B", size)
			pdf.SetFillColor(head.r, head.g, head.b)
			pdf.SetTextColor(headText.r, headText.g, headText.b)
		} else {
			pdf.SetFont("Helvetica", "", size)
			pdf.SetTextColor(0, 0, 0)
		}
		for j, cell := range row {
			align := "L"
			if j > 0 {
				align = "R"
			}
			pdf.CellFormat(widths[j], rowHeight, tr(cell), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(rowHeight)
	}
	pdf.SetTextColor(0, 0, 0)
}

// num formats v without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
