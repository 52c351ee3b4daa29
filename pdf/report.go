// Package pdf renders a patient's medical history as a paginated PDF document.
package pdf

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/medvault/medvault-api/models"
)

// Card geometry, in points. Layout is driven by a manual y cursor; the automatic
// page break stays off so a record never splits mid-card.
const (
	cardX        = 20.0
	cardWidth    = 555.0
	headerHeight = 28.0
	lineSpacing  = 18.0
	cardPadding  = 12.0
	cardGap      = 10.0
	footerSpace  = 30.0
)

// RenderHistory writes the full medical-history report for the given records to w.
// Records must be non-empty; the first record supplies the personal details card.
func RenderHistory(w io.Writer, records []models.MedicalRecord) error {
	doc := build(records, time.Now())
	return doc.Output(w)
}

func build(records []models.MedicalRecord, now time.Time) *gofpdf.Fpdf {
	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetTitle("Medical History Report", false)
	doc.SetAuthor("Medical Records System", false)
	doc.SetSubject("Patient Medical History", false)
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	pageWidth, pageHeight := doc.GetPageSize()

	// Page 1: title, generation date, personal details and the first record.
	doc.SetFont("Helvetica", "B", 22)
	doc.SetTextColor(30, 64, 175)
	doc.SetXY(20, 24)
	doc.CellFormat(pageWidth-40, 24, "Medical History Report", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 12)
	doc.SetTextColor(100, 116, 139)
	doc.CellFormat(pageWidth-40, 16, "Generated on: "+now.Format("1/2/2006"), "", 1, "C", false, 0, "")

	first := records[0]
	y := doc.GetY() + 10
	y = drawCard(doc, "Personal Details", personalLines(first), y, 16, 13)
	y = drawCard(doc, "Vital Signs", vitalLines(first), y, 14, 11)
	y = drawCard(doc, "Medical History", historyLines(first), y, 14, 11)
	if extra := additionalLines(first); len(extra) > 0 {
		y = drawCard(doc, "Additional Information", extra, y, 14, 11)
	}
	drawFooter(doc, 1, len(records), pageWidth, pageHeight)

	for idx := 1; idx < len(records); idx++ {
		record := records[idx]
		if y+sectionHeight(record) > pageHeight {
			doc.AddPage()
			y = 20
		}
		y = drawCard(doc, "Vital Signs", vitalLines(record), y, 14, 11)
		y = drawCard(doc, "Medical History", historyLines(record), y, 14, 11)
		if extra := additionalLines(record); len(extra) > 0 {
			y = drawCard(doc, "Additional Information", extra, y, 14, 11)
		}
		drawFooter(doc, idx+1, len(records), pageWidth, pageHeight)
	}

	return doc
}

// sectionHeight estimates the vertical room one record needs, including the
// footer allowance, before pagination decides whether to start a fresh page.
func sectionHeight(record models.MedicalRecord) float64 {
	height := cardHeight(5) + cardGap // vital signs
	height += cardHeight(4) + cardGap // medical history
	if extra := additionalLineCount(record); extra > 0 {
		height += cardHeight(extra) + cardGap
	}
	return height + footerSpace
}

func cardHeight(lines int) float64 {
	return headerHeight + float64(lines)*lineSpacing + cardPadding*2
}

func additionalLineCount(record models.MedicalRecord) int {
	n := 0
	if record.MentalHealth != nil {
		n += 3
	}
	if record.SleepQuality != nil {
		n += 2
	}
	if record.Lifestyle != nil {
		n += 4
	}
	return n
}

// drawCard paints one bordered card with a filled header bar and returns the y
// cursor below the card plus the inter-card gap.
func drawCard(doc *gofpdf.Fpdf, title string, lines []string, y float64, headerFont, contentFont float64) float64 {
	height := cardHeight(len(lines))

	doc.SetFillColor(248, 250, 252)
	doc.Rect(cardX, y, cardWidth, height, "F")
	doc.SetDrawColor(37, 99, 235)
	doc.SetLineWidth(1)
	doc.Rect(cardX, y, cardWidth, height, "D")
	doc.SetFillColor(37, 99, 235)
	doc.Rect(cardX, y, cardWidth, headerHeight, "F")

	doc.SetFont("Helvetica", "B", headerFont)
	doc.SetTextColor(255, 255, 255)
	doc.SetXY(cardX+cardPadding, y+6)
	doc.CellFormat(cardWidth-cardPadding*2, headerFont+2, title, "", 0, "L", false, 0, "")

	doc.SetFont("Helvetica", "", contentFont)
	doc.SetTextColor(30, 41, 59)
	lineY := y + headerHeight + cardPadding
	for _, line := range lines {
		doc.SetXY(cardX+cardPadding, lineY)
		doc.CellFormat(cardWidth-cardPadding*2, lineSpacing, line, "", 0, "L", false, 0, "")
		lineY += lineSpacing
	}

	return y + height + cardGap
}

func drawFooter(doc *gofpdf.Fpdf, page, total int, pageWidth, pageHeight float64) {
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(100, 116, 139)
	doc.SetXY(20, pageHeight-footerSpace)
	doc.CellFormat(pageWidth-40, 12, fmt.Sprintf("Page %d of %d", page, total), "", 0, "C", false, 0, "")
}

func personalLines(record models.MedicalRecord) []string {
	return []string{
		"Name: " + orNA(record.Name),
		"Aadhar Number: " + orNA(record.AadharNo),
		"Age: " + orNA(record.Age),
		"Gender: " + orNA(record.Gender),
	}
}

func vitalLines(record models.MedicalRecord) []string {
	return []string{
		"Weight: " + record.Weight + " kg",
		"Height: " + record.Height + " cm",
		"BMI: " + fmtBMI(record.BMI),
		"Blood Pressure: " + orNA(record.BloodPressure),
		"Sugar Level: " + orNA(record.SugarLevel),
	}
}

func historyLines(record models.MedicalRecord) []string {
	return []string{
		"Allergies: " + orNA(record.Allergies),
		"Past Surgeries: " + orNA(record.PastSurgeries),
		"Current Medications: " + orNA(record.CurrentMedications),
		"Family History: " + orNA(record.FamilyHistory),
	}
}

func additionalLines(record models.MedicalRecord) []string {
	var lines []string
	if mh := record.MentalHealth; mh != nil {
		lines = append(lines,
			"Stress Level: "+orNA(mh.StressLevel),
			"Anxiety: "+yesNo(mh.Anxiety),
			"Depression: "+yesNo(mh.Depression),
		)
	}
	if sq := record.SleepQuality; sq != nil {
		lines = append(lines,
			"Sleep Hours: "+orNA(sq.HoursPerNight),
			"Sleep Quality: "+orNA(sq.Quality),
		)
	}
	if ls := record.Lifestyle; ls != nil {
		lines = append(lines,
			"Smoking: "+yesNo(ls.Smoking),
			"Alcohol: "+yesNo(ls.Alcohol),
			"Exercise: "+yesNo(ls.Exercise),
			"Sleep: "+yesNo(ls.Sleep),
		)
	}
	return lines
}

func fmtBMI(bmi string) string {
	v, err := strconv.ParseFloat(bmi, 64)
	if err != nil || math.IsNaN(v) {
		return "N/A"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
