package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/medvault/medvault-api/api/handlers"
	"github.com/medvault/medvault-api/databases/mocks"
	"github.com/medvault/medvault-api/models"
)

func TestMedicalRecord_CreateMissingRecordID(t *testing.T) {
	db := &mocks.MedicalRecordDatabase{}
	h := handlers.MedicalRecord{DB: db}

	body := bytes.NewBufferString(`{"aadharNo":"123456789012","name":"Asha"}`)
	req := httptest.NewRequest("POST", "/api/medical-records/create", body)
	rr := httptest.NewRecorder()

	h.CreateRecordHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Record ID is required")
	db.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMedicalRecord_CreateDuplicateRecordID(t *testing.T) {
	db := &mocks.MedicalRecordDatabase{}
	db.On("ExistsByRecordID", mock.Anything, "rec-1").Return(true, nil)
	h := handlers.MedicalRecord{DB: db}

	body := bytes.NewBufferString(`{"recordId":"rec-1","aadharNo":"123456789012","name":"Asha","age":30,"gender":"F","weight":65,"height":165}`)
	req := httptest.NewRequest("POST", "/api/medical-records/create", body)
	rr := httptest.NewRecorder()

	h.CreateRecordHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Record ID already exists")
	db.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMedicalRecord_CreateDerivesBMI(t *testing.T) {
	db := &mocks.MedicalRecordDatabase{}
	db.On("ExistsByRecordID", mock.Anything, "rec-1").Return(false, nil)

	var stored *models.MedicalRecord
	db.On("Create", mock.Anything, mock.AnythingOfType("*models.MedicalRecord")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.MedicalRecord)
		}).Return(nil)

	h := handlers.MedicalRecord{DB: db}

	// numeric weight, string height and a caller-supplied bmi that must be ignored
	body := bytes.NewBufferString(`{"recordId":"rec-1","aadharNo":"123456789012","name":"Asha","age":30,"gender":"F","weight":65,"height":"165","bmi":"99"}`)
	req := httptest.NewRequest("POST", "/api/medical-records/create", body)
	rr := httptest.NewRecorder()

	h.CreateRecordHandler(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, stored)
	assert.Equal(t, "65", stored.Weight)
	assert.Equal(t, "165", stored.Height)

	bmi, err := strconv.ParseFloat(stored.BMI, 64)
	require.NoError(t, err)
	assert.InDelta(t, 23.875, bmi, 0.001)
}

func TestMedicalRecord_StatsSingleRecordNumericAverage(t *testing.T) {
	now := time.Now()
	db := &mocks.MedicalRecordDatabase{}
	db.On("FindByAadhar", mock.Anything, "123456789012", true).Return([]models.MedicalRecord{
		{RecordID: "rec-1", BMI: "23.875114784205696", Weight: "65", CreatedAt: now},
	}, nil)

	h := handlers.MedicalRecord{DB: db}
	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/medical-records/stats/123456789012", nil),
		map[string]string{"aadharNo": "123456789012"})
	rr := httptest.NewRecorder()

	h.StatsHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data struct {
			TotalRecords int         `json:"totalRecords"`
			AverageBMI   interface{} `json:"averageBMI"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.TotalRecords)

	// a single record yields a bare number, not a formatted string
	avg, ok := resp.Data.AverageBMI.(float64)
	require.True(t, ok, "averageBMI should be numeric, got %T", resp.Data.AverageBMI)
	assert.InDelta(t, 23.875114784205696, avg, 1e-9)
}

func TestMedicalRecord_StatsMultiRecordFormattedAverage(t *testing.T) {
	now := time.Now()
	db := &mocks.MedicalRecordDatabase{}
	db.On("FindByAadhar", mock.Anything, "123456789012", true).Return([]models.MedicalRecord{
		{RecordID: "rec-2", BMI: "25", CreatedAt: now},
		{RecordID: "rec-1", BMI: "23", CreatedAt: now.Add(-time.Hour)},
	}, nil)

	h := handlers.MedicalRecord{DB: db}
	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/medical-records/stats/123456789012", nil),
		map[string]string{"aadharNo": "123456789012"})
	rr := httptest.NewRecorder()

	h.StatsHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data struct {
			AverageBMI interface{} `json:"averageBMI"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "24.00", resp.Data.AverageBMI)
}

func TestMedicalRecord_HistoryPDF(t *testing.T) {
	db := &mocks.MedicalRecordDatabase{}
	db.On("FindByAadhar", mock.Anything, "123456789012", false).Return([]models.MedicalRecord{
		{RecordID: "rec-1", AadharNo: "123456789012", Name: "Asha", Weight: "65", Height: "165", BMI: "23.875"},
	}, nil)

	h := handlers.MedicalRecord{DB: db}
	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/medical-records/123456789012", nil),
		map[string]string{"aadharNo": "123456789012"})
	rr := httptest.NewRecorder()

	h.HistoryPDFHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=medical-history.pdf", rr.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("%PDF")))
}

func TestMedicalRecord_HistoryPDFNoRecords(t *testing.T) {
	db := &mocks.MedicalRecordDatabase{}
	db.On("FindByAadhar", mock.Anything, "999999999999", false).Return(nil, nil)

	h := handlers.MedicalRecord{DB: db}
	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/medical-records/999999999999", nil),
		map[string]string{"aadharNo": "999999999999"})
	rr := httptest.NewRecorder()

	h.HistoryPDFHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "No medical records found")
}

func TestMedicalRecord_UpdateRecomputesBMIOnlyWithBothFields(t *testing.T) {
	db := &mocks.MedicalRecordDatabase{}
	var lastSet bson.M
	db.On("UpdateByAadhar", mock.Anything, "123456789012", mock.Anything).
		Run(func(args mock.Arguments) {
			lastSet = args.Get(2).(bson.M)
		}).
		Return(&models.MedicalRecord{RecordID: "rec-1"}, nil)

	h := handlers.MedicalRecord{DB: db}

	// weight alone must not touch bmi
	req := mux.SetURLVars(httptest.NewRequest("PUT", "/api/medical-records/123456789012",
		bytes.NewBufferString(`{"weight":70}`)), map[string]string{"aadharNo": "123456789012"})
	rr := httptest.NewRecorder()
	h.UpdateRecordHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "70", lastSet["weight"])
	assert.NotContains(t, lastSet, "bmi")

	// both fields present recomputes bmi
	req = mux.SetURLVars(httptest.NewRequest("PUT", "/api/medical-records/123456789012",
		bytes.NewBufferString(`{"weight":70,"height":175}`)), map[string]string{"aadharNo": "123456789012"})
	rr = httptest.NewRecorder()
	h.UpdateRecordHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	bmi, err := strconv.ParseFloat(lastSet["bmi"].(string), 64)
	require.NoError(t, err)
	assert.InDelta(t, 22.857, bmi, 0.001)
}

func TestMedicalRecord_DeleteNotFound(t *testing.T) {
	db := &mocks.MedicalRecordDatabase{}
	db.On("DeleteByRecordID", mock.Anything, "missing").Return(nil, mongoNoDocuments())

	h := handlers.MedicalRecord{DB: db}
	req := mux.SetURLVars(httptest.NewRequest("DELETE", "/api/medical-records/missing", nil),
		map[string]string{"recordId": "missing"})
	rr := httptest.NewRecorder()

	h.DeleteRecordHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Medical record not found")
}

func TestMedicalRecord_SearchEmptyResultIsOK(t *testing.T) {
	db := &mocks.MedicalRecordDatabase{}
	db.On("SearchByName", mock.Anything, "nobody").Return([]models.MedicalRecord{}, nil)

	h := handlers.MedicalRecord{DB: db}
	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/medical-records/search/name/nobody", nil),
		map[string]string{"name": "nobody"})
	rr := httptest.NewRecorder()

	h.SearchByNameHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMedicalRecord_CreateRejectsShortAadhar(t *testing.T) {
	db := &mocks.MedicalRecordDatabase{}
	h := handlers.MedicalRecord{DB: db}

	body := bytes.NewBufferString(`{"recordId":"rec-1","aadharNo":"12345","name":"Asha","age":30,"gender":"F","weight":65,"height":165}`)
	req := httptest.NewRequest("POST", "/api/medical-records/create", body)
	rr := httptest.NewRecorder()

	h.CreateRecordHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Validation failed")
	db.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMedicalRecord_CreateRejectsMissingSchemaFields(t *testing.T) {
	db := &mocks.MedicalRecordDatabase{}
	h := handlers.MedicalRecord{DB: db}

	// empty aadharNo and no vitals must never reach the store
	body := bytes.NewBufferString(`{"recordId":"rec-1","aadharNo":""}`)
	req := httptest.NewRequest("POST", "/api/medical-records/create", body)
	rr := httptest.NewRecorder()

	h.CreateRecordHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Validation failed")
	db.AssertNotCalled(t, "ExistsByRecordID", mock.Anything, mock.Anything)
	db.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMedicalRecord_StatsSingleRecordUnparsableBMIIsNull(t *testing.T) {
	db := &mocks.MedicalRecordDatabase{}
	db.On("FindByAadhar", mock.Anything, "123456789012", true).Return([]models.MedicalRecord{
		{RecordID: "rec-1", BMI: "NaN", Weight: "65", CreatedAt: time.Now()},
	}, nil)

	h := handlers.MedicalRecord{DB: db}
	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/medical-records/stats/123456789012", nil),
		map[string]string{"aadharNo": "123456789012"})
	rr := httptest.NewRecorder()

	h.StatsHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	avg, present := resp.Data["averageBMI"]
	require.True(t, present)
	assert.Nil(t, avg)
}

func TestMedicalRecord_StatsMultiRecordNaNPropagates(t *testing.T) {
	now := time.Now()
	db := &mocks.MedicalRecordDatabase{}
	db.On("FindByAadhar", mock.Anything, "123456789012", true).Return([]models.MedicalRecord{
		{RecordID: "rec-2", BMI: "NaN", CreatedAt: now},
		{RecordID: "rec-1", BMI: "23", CreatedAt: now.Add(-time.Hour)},
	}, nil)

	h := handlers.MedicalRecord{DB: db}
	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/medical-records/stats/123456789012", nil),
		map[string]string{"aadharNo": "123456789012"})
	rr := httptest.NewRecorder()

	h.StatsHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data struct {
			AverageBMI interface{} `json:"averageBMI"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "NaN", resp.Data.AverageBMI)
}
