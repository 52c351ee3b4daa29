package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medvault/medvault-api/models"
)

func simpleRecord() models.MedicalRecord {
	return models.MedicalRecord{
		RecordID: "rec-1",
		AadharNo: "123456789012",
		Name:     "Asha Verma",
		Age:      "34",
		Gender:   "female",
		Weight:   "65",
		Height:   "165",
		BMI:      "23.875114784205696",
	}
}

func TestSectionHeightBareRecord(t *testing.T) {
	// vital signs (5 lines) + medical history (4 lines) + gaps + footer allowance
	want := (28 + 5*18 + 24 + 10) + (28 + 4*18 + 24 + 10) + 30.0
	assert.Equal(t, want, sectionHeight(simpleRecord()))
}

func TestSectionHeightWithAdditionalInfo(t *testing.T) {
	rec := simpleRecord()
	rec.Lifestyle = &models.Lifestyle{Exercise: true}
	bare := sectionHeight(simpleRecord())
	assert.Equal(t, bare+(28+4*18+24+10), sectionHeight(rec))

	rec.MentalHealth = &models.MentalHealth{StressLevel: "low"}
	rec.SleepQuality = &models.SleepQuality{HoursPerNight: "7"}
	assert.Equal(t, bare+(28+9*18+24+10), sectionHeight(rec))
}

func TestBuildSingleRecordSinglePage(t *testing.T) {
	doc := build([]models.MedicalRecord{simpleRecord()}, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, 1, doc.PageCount())
	require.NoError(t, doc.Error())
}

func TestBuildThreeRecordsPacksTwoPages(t *testing.T) {
	records := []models.MedicalRecord{simpleRecord(), simpleRecord(), simpleRecord()}
	doc := build(records, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))

	// two bare records fit below the first on page one; the third starts page two
	assert.Equal(t, 2, doc.PageCount())

	doc.SetCompression(false)
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	out := buf.String()
	assert.Contains(t, out, "Medical History Report")
	assert.Contains(t, out, "Generated on: 3/14/2026")
	// footers number records, not physical pages
	assert.Contains(t, out, "Page 1 of 3")
	assert.Contains(t, out, "Page 2 of 3")
	assert.Contains(t, out, "Page 3 of 3")
}

func TestRenderHistoryWritesPDF(t *testing.T) {
	var buf bytes.Buffer
	err := RenderHistory(&buf, []models.MedicalRecord{simpleRecord()})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestFmtBMI(t *testing.T) {
	assert.Equal(t, "23.88", fmtBMI("23.875114784205696"))
	assert.Equal(t, "22.00", fmtBMI("22"))
	assert.Equal(t, "N/A", fmtBMI(""))
	assert.Equal(t, "N/A", fmtBMI("NaN"))
}

func TestAdditionalLinesOrderAndPlaceholders(t *testing.T) {
	rec := simpleRecord()
	assert.Empty(t, additionalLines(rec))

	rec.MentalHealth = &models.MentalHealth{Anxiety: true}
	rec.Lifestyle = &models.Lifestyle{Smoking: true}
	lines := additionalLines(rec)
	require.Len(t, lines, 7)
	assert.Equal(t, "Stress Level: N/A", lines[0])
	assert.Equal(t, "Anxiety: Yes", lines[1])
	assert.Equal(t, "Smoking: Yes", lines[3])
	assert.Equal(t, "Sleep: No", lines[6])
}
