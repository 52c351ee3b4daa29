package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/medvault/medvault-api/api"
	"github.com/medvault/medvault-api/config"
	"github.com/medvault/medvault-api/databases"
	"github.com/medvault/medvault-api/models"
	"github.com/medvault/medvault-api/pdf"
)

// MedicalRecord exported for testing purposes
type MedicalRecord struct {
	DB databases.MedicalRecordDatabase
}

// MedicalRecordRequest accepts scalar vitals as either JSON numbers or strings;
// everything is canonicalized to strings before it reaches the database. The bmi
// field is never read from the caller.
type MedicalRecordRequest struct {
	RecordID            string                   `json:"recordId"`
	AadharNo            string                   `json:"aadharNo"`
	Name                string                   `json:"name"`
	Age                 interface{}              `json:"age"`
	Gender              string                   `json:"gender"`
	Weight              interface{}              `json:"weight"`
	Height              interface{}              `json:"height"`
	BloodPressure       interface{}              `json:"bloodPressure"`
	SugarLevel          interface{}              `json:"sugarLevel"`
	Cholesterol         interface{}              `json:"cholesterol"`
	Allergies           interface{}              `json:"allergies"`
	PastSurgeries       interface{}              `json:"pastSurgeries"`
	CurrentMedications  interface{}              `json:"currentMedications"`
	FamilyHistory       interface{}              `json:"familyHistory"`
	VaccinationHistory  interface{}              `json:"vaccinationHistory"`
	DietaryRestrictions interface{}              `json:"dietaryRestrictions"`
	EmergencyContact    *models.EmergencyContact `json:"emergencyContact"`
	MentalHealth        *MentalHealthRequest     `json:"mentalHealth"`
	SleepQuality        *SleepQualityRequest     `json:"sleepQuality"`
	Lifestyle           *models.Lifestyle        `json:"lifestyle"`
}

// MentalHealthRequest mirrors the stored sub-object with a flexible stress level
type MentalHealthRequest struct {
	StressLevel interface{} `json:"stressLevel"`
	Anxiety     bool        `json:"anxiety"`
	Depression  bool        `json:"depression"`
}

// SleepQualityRequest mirrors the stored sub-object with flexible scalars
type SleepQualityRequest struct {
	HoursPerNight interface{} `json:"hoursPerNight"`
	Quality       interface{} `json:"quality"`
}

// stringify canonicalizes a JSON scalar the way a document database client would:
// numbers render without trailing zeros, absent values become the empty string.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// computeBMI derives bmi = weight_kg / (height_cm / 100)^2 and stores the full
// precision string. Unparsable inputs yield "NaN", matching what historic records
// already hold.
func computeBMI(weight, height string) string {
	w, werr := strconv.ParseFloat(weight, 64)
	h, herr := strconv.ParseFloat(height, 64)
	if werr != nil || herr != nil {
		return strconv.FormatFloat(math.NaN(), 'f', -1, 64)
	}
	hm := h / 100
	return strconv.FormatFloat(w/(hm*hm), 'f', -1, 64)
}

// medicalRecordCore is the schema-required slice of a record, validated after the
// scalar fields have been stringified.
type medicalRecordCore struct {
	AadharNo string `validate:"required,len=12,numeric"`
	Name     string `validate:"required"`
	Age      string `validate:"required"`
	Gender   string `validate:"required"`
	Weight   string `validate:"required"`
	Height   string `validate:"required"`
}

// CreateRecordHandler stores a new medical record. The recordId must be present and
// unique; a duplicate leaves the first record untouched.
func (h MedicalRecord) CreateRecordHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req MedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.RecordID == "" {
		config.ErrorStatus("Record ID is required", http.StatusBadRequest, w, nil)
		return
	}

	weight := stringify(req.Weight)
	height := stringify(req.Height)
	core := medicalRecordCore{
		AadharNo: req.AadharNo,
		Name:     req.Name,
		Age:      stringify(req.Age),
		Gender:   req.Gender,
		Weight:   weight,
		Height:   height,
	}
	if err := validate.Struct(core); err != nil {
		config.ValidationStatus("Validation failed", validationErrors(err), w)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	exists, err := h.DB.ExistsByRecordID(ctx, req.RecordID)
	if err != nil {
		config.ErrorStatus("Failed to create medical record", http.StatusInternalServerError, w, err)
		return
	}
	if exists {
		config.ErrorStatus("Record ID already exists", http.StatusBadRequest, w, nil)
		return
	}

	record := models.MedicalRecord{
		RecordID:            req.RecordID,
		AadharNo:            req.AadharNo,
		Name:                req.Name,
		Age:                 core.Age,
		Gender:              req.Gender,
		Weight:              weight,
		Height:              height,
		BMI:                 computeBMI(weight, height),
		BloodPressure:       stringify(req.BloodPressure),
		SugarLevel:          stringify(req.SugarLevel),
		Cholesterol:         stringify(req.Cholesterol),
		Allergies:           stringify(req.Allergies),
		PastSurgeries:       stringify(req.PastSurgeries),
		CurrentMedications:  stringify(req.CurrentMedications),
		FamilyHistory:       stringify(req.FamilyHistory),
		VaccinationHistory:  stringify(req.VaccinationHistory),
		DietaryRestrictions: stringify(req.DietaryRestrictions),
		EmergencyContact:    req.EmergencyContact,
	}
	if req.MentalHealth != nil {
		record.MentalHealth = &models.MentalHealth{
			StressLevel: stringify(req.MentalHealth.StressLevel),
			Anxiety:     req.MentalHealth.Anxiety,
			Depression:  req.MentalHealth.Depression,
		}
	}
	if req.SleepQuality != nil {
		record.SleepQuality = &models.SleepQuality{
			HoursPerNight: stringify(req.SleepQuality.HoursPerNight),
			Quality:       stringify(req.SleepQuality.Quality),
		}
	}
	record.Lifestyle = req.Lifestyle

	if err := h.DB.Create(ctx, &record); err != nil {
		config.ErrorStatus("Failed to create medical record", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Message: "Medical record created successfully", Data: record})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// RecordSummariesHandler returns the trimmed per-record history, newest first
func (h MedicalRecord) RecordSummariesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	aadharNo := mux.Vars(r)["aadharNo"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	records, err := h.DB.FindByAadhar(ctx, aadharNo, true)
	if err != nil {
		config.ErrorStatus("Failed to fetch medical records", http.StatusInternalServerError, w, err)
		return
	}
	if len(records) == 0 {
		config.ErrorStatus("No medical records found for the given Aadhar number", http.StatusNotFound, w, nil)
		return
	}

	summaries := make([]models.RecordSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, models.RecordSummary{
			CreatedAt:     rec.CreatedAt,
			BloodPressure: rec.BloodPressure,
			Weight:        rec.Weight,
		})
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Data: summaries})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// AllRecordsHandler returns every record for an Aadhaar number, newest first
func (h MedicalRecord) AllRecordsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	aadharNo := mux.Vars(r)["aadharNo"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	records, err := h.DB.FindByAadhar(ctx, aadharNo, true)
	if err != nil {
		config.ErrorStatus("Failed to fetch medical records", http.StatusInternalServerError, w, err)
		return
	}
	if len(records) == 0 {
		config.ErrorStatus("No medical records found for the given Aadhar number", http.StatusNotFound, w, nil)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Message: "Medical records fetched successfully", Count: len(records), Data: records})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// LatestRecordHandler returns the newest full record for an Aadhaar number
func (h MedicalRecord) LatestRecordHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	aadharNo := mux.Vars(r)["aadharNo"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	record, err := h.DB.LatestByAadhar(ctx, aadharNo)
	if err != nil {
		if databases.IsNoDocuments(err) {
			config.ErrorStatus("No medical record found for the given Aadhar number", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("Failed to fetch latest medical record", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Message: "Latest medical record fetched successfully", Data: record})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// VitalsHandler returns the newest record's vital signs only
func (h MedicalRecord) VitalsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	aadharNo := mux.Vars(r)["aadharNo"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	record, err := h.DB.LatestByAadhar(ctx, aadharNo)
	if err != nil {
		if databases.IsNoDocuments(err) {
			config.ErrorStatus("No medical record found for the given Aadhar number", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("Failed to fetch latest medical record", http.StatusInternalServerError, w, err)
		return
	}

	vitals := models.RecordVitals{
		Weight:        record.Weight,
		Height:        record.Height,
		BMI:           record.BMI,
		BloodPressure: record.BloodPressure,
		SugarLevel:    record.SugarLevel,
	}
	b, err := json.Marshal(models.APIResponse{Success: true, Data: vitals})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// HistoryPDFHandler streams the patient's full history as a PDF attachment
func (h MedicalRecord) HistoryPDFHandler(w http.ResponseWriter, r *http.Request) {
	aadharNo := mux.Vars(r)["aadharNo"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	records, err := h.DB.FindByAadhar(ctx, aadharNo, false)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		config.ErrorStatus("Failed to fetch medical records", http.StatusInternalServerError, w, err)
		return
	}
	if len(records) == 0 {
		w.Header().Set("Content-Type", "application/json")
		config.ErrorStatus("No medical records found for the given Aadhar number", http.StatusNotFound, w, nil)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=medical-history.pdf")
	if err := pdf.RenderHistory(w, records); err != nil {
		config.ErrorStatus("Failed to generate medical history PDF", http.StatusInternalServerError, w, err)
		return
	}
}

// UpdateRecordHandler partially updates the record matched by Aadhaar number. BMI is
// recomputed only when both height and weight arrive in the same request; nested
// sub-objects are replaced whole.
func (h MedicalRecord) UpdateRecordHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	aadharNo := mux.Vars(r)["aadharNo"]

	var req MedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Gender != "" {
		set["gender"] = req.Gender
	}
	scalars := map[string]interface{}{
		"age":                 req.Age,
		"weight":              req.Weight,
		"height":              req.Height,
		"bloodPressure":       req.BloodPressure,
		"sugarLevel":          req.SugarLevel,
		"cholesterol":         req.Cholesterol,
		"allergies":           req.Allergies,
		"pastSurgeries":       req.PastSurgeries,
		"currentMedications":  req.CurrentMedications,
		"familyHistory":       req.FamilyHistory,
		"vaccinationHistory":  req.VaccinationHistory,
		"dietaryRestrictions": req.DietaryRestrictions,
	}
	for field, value := range scalars {
		if value != nil {
			set[field] = stringify(value)
		}
	}
	if req.Height != nil && req.Weight != nil {
		set["bmi"] = computeBMI(stringify(req.Weight), stringify(req.Height))
	}
	if req.EmergencyContact != nil {
		set["emergencyContact"] = req.EmergencyContact
	}
	if req.MentalHealth != nil {
		set["mentalHealth"] = models.MentalHealth{
			StressLevel: stringify(req.MentalHealth.StressLevel),
			Anxiety:     req.MentalHealth.Anxiety,
			Depression:  req.MentalHealth.Depression,
		}
	}
	if req.SleepQuality != nil {
		set["sleepQuality"] = models.SleepQuality{
			HoursPerNight: stringify(req.SleepQuality.HoursPerNight),
			Quality:       stringify(req.SleepQuality.Quality),
		}
	}
	if req.Lifestyle != nil {
		set["lifestyle"] = req.Lifestyle
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	record, err := h.DB.UpdateByAadhar(ctx, aadharNo, set)
	if err != nil {
		if databases.IsNoDocuments(err) {
			config.ErrorStatus("Medical record not found for the given Aadhar number", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("Failed to update medical record", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Message: "Medical record updated successfully", Data: record})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteRecordHandler removes a record by its recordId and echoes the deleted document
func (h MedicalRecord) DeleteRecordHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	recordID := mux.Vars(r)["recordId"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	record, err := h.DB.DeleteByRecordID(ctx, recordID)
	if err != nil {
		if databases.IsNoDocuments(err) {
			config.ErrorStatus("Medical record not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("Failed to delete medical record", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Message: "Medical record deleted successfully", Data: record})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// SearchByNameHandler matches patient names case-insensitively; no match is an
// empty 200, not a 404
func (h MedicalRecord) SearchByNameHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	name := mux.Vars(r)["name"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	records, err := h.DB.SearchByName(ctx, name)
	if err != nil {
		config.ErrorStatus("Failed to search medical records", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Message: "Medical records found", Count: len(records), Data: records})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// StatsHandler aggregates a patient's record history. With more than one record the
// average BMI is a 2-decimal string; with exactly one it is the bare parsed number.
func (h MedicalRecord) StatsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	aadharNo := mux.Vars(r)["aadharNo"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	records, err := h.DB.FindByAadhar(ctx, aadharNo, true)
	if err != nil {
		config.ErrorStatus("Failed to get statistics", http.StatusInternalServerError, w, err)
		return
	}
	if len(records) == 0 {
		config.ErrorStatus("No medical records found for the given Aadhar number", http.StatusNotFound, w, nil)
		return
	}

	latest := records[0]
	oldest := records[len(records)-1]

	var averageBMI interface{}
	if len(records) > 1 {
		sum := 0.0
		for _, rec := range records {
			sum += parseBMI(rec.BMI)
		}
		averageBMI = fmt.Sprintf("%.2f", sum/float64(len(records)))
	} else {
		v := parseBMI(latest.BMI)
		if math.IsNaN(v) {
			// NaN has no JSON encoding, it goes out as null
			averageBMI = nil
		} else {
			averageBMI = v
		}
	}

	history := make([]models.StatsSample, 0, len(records))
	for _, rec := range records {
		history = append(history, models.StatsSample{
			Date:   rec.CreatedAt,
			Weight: rec.Weight,
			BMI:    rec.BMI,
		})
	}

	stats := models.RecordStats{
		TotalRecords: len(records),
		LatestRecord: models.StatsLatest{
			Date:          latest.CreatedAt,
			BMI:           latest.BMI,
			Weight:        latest.Weight,
			BloodPressure: latest.BloodPressure,
			SugarLevel:    latest.SugarLevel,
		},
		OldestRecord: models.StatsOldest{
			Date:   oldest.CreatedAt,
			BMI:    oldest.BMI,
			Weight: oldest.Weight,
		},
		AverageBMI:    averageBMI,
		RecordHistory: history,
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Message: "Statistics retrieved successfully", Data: stats})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// parseBMI treats a missing stored bmi as zero; anything unparsable, including a
// stored "NaN", propagates NaN into the aggregate.
func parseBMI(bmi string) float64 {
	if bmi == "" {
		return 0
	}
	v, err := strconv.ParseFloat(bmi, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
