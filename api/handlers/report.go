package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medvault/medvault-api/api"
	"github.com/medvault/medvault-api/config"
	"github.com/medvault/medvault-api/databases"
	"github.com/medvault/medvault-api/models"
)

// maxUploadFiles caps how many attachments one report may carry
const maxUploadFiles = 10

// Report exported for testing purposes
type Report struct {
	DB      databases.ReportDatabase
	Storage *Storage
}

// UploadReportRequest carries the multipart metadata fields of a lab report
type UploadReportRequest struct {
	ReportType string `validate:"required,oneof=bloodTest xray mri other"`
	DoctorName string `validate:"required"`
	ReportDate string `validate:"required"`
}

// UploadHandler stores up to ten attachments for one lab report. Type and size are
// checked before anything is written; the document is only saved once every file is
// on disk.
func (h Report) UploadHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, ok := api.ClaimsFromContext(r.Context())
	if !ok {
		config.ErrorStatus("Token is not valid", http.StatusUnauthorized, w, nil)
		return
	}

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		config.ErrorStatus("failed to parse multipart form", http.StatusBadRequest, w, err)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		config.ErrorStatus("Please upload at least one PDF or image file", http.StatusBadRequest, w, nil)
		return
	}
	if len(files) > maxUploadFiles {
		config.ErrorStatus("Too many files, at most 10 are allowed", http.StatusBadRequest, w, nil)
		return
	}

	meta := UploadReportRequest{
		ReportType: r.FormValue("reportType"),
		DoctorName: r.FormValue("doctorName"),
		ReportDate: r.FormValue("reportDate"),
	}
	if err := validate.Struct(meta); err != nil {
		config.ValidationStatus("Validation failed", validationErrors(err), w)
		return
	}

	// reject the whole batch before any disk or database write
	for _, fh := range files {
		if !allowedMimeTypes[fh.Header.Get("Content-Type")] {
			config.ErrorStatus(ErrUnsupportedFileType.Error(), http.StatusBadRequest, w, nil)
			return
		}
		if fh.Size > maxFileSize {
			config.ErrorStatus(ErrFileTooLarge.Error(), http.StatusBadRequest, w, nil)
			return
		}
	}

	userID := r.FormValue("userId")
	if userID == "" {
		userID = claims.UserID
	}

	reportDate, err := time.Parse("2006-01-02", meta.ReportDate)
	if err != nil {
		reportDate = time.Now().UTC()
	}

	report := models.Report{
		UserID:     userID,
		AadharNo:   r.FormValue("AadharNo"),
		ReportType: meta.ReportType,
		DoctorName: meta.DoctorName,
		ReportDate: reportDate,
		Notes:      r.FormValue("notes"),
	}

	saved := make([]models.ReportFile, 0, len(files))
	for _, fh := range files {
		stored, err := h.Storage.SaveFile(fh)
		if err != nil {
			h.Storage.RemoveFiles(saved)
			status := http.StatusInternalServerError
			if errors.Is(err, ErrUnsupportedFileType) || errors.Is(err, ErrFileTooLarge) {
				status = http.StatusBadRequest
			}
			config.ErrorStatus("Upload failed. "+err.Error(), status, w, err)
			return
		}
		saved = append(saved, stored)
	}
	report.Files = saved

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.Create(ctx, &report); err != nil {
		h.Storage.RemoveFiles(saved)
		config.ErrorStatus("Upload failed. "+err.Error(), http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Message: "Report uploaded successfully", Data: report})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ReportsByAadharHandler lists a patient's reports, newest first
func (h Report) ReportsByAadharHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	aadharNo := mux.Vars(r)["aadharNo"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	reports, err := h.DB.FindByAadhar(ctx, aadharNo)
	if err != nil {
		config.ErrorStatus("Failed to fetch reports", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Count: len(reports), Data: reports})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ReportByIDHandler fetches one report, only for the user who uploaded it
func (h Report) ReportByIDHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, ok := api.ClaimsFromContext(r.Context())
	if !ok {
		config.ErrorStatus("Token is not valid", http.StatusUnauthorized, w, nil)
		return
	}
	reportID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	report, err := h.DB.FindByIDAndUser(ctx, reportID, claims.UserID)
	if err != nil {
		config.ErrorStatus("Report not found", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Data: report})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteReportHandler removes the report document after a best-effort sweep of its
// files on disk; a file that is already gone never aborts the delete
func (h Report) DeleteReportHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, ok := api.ClaimsFromContext(r.Context())
	if !ok {
		config.ErrorStatus("Token is not valid", http.StatusUnauthorized, w, nil)
		return
	}
	reportID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	report, err := h.DB.FindByIDAndUser(ctx, reportID, claims.UserID)
	if err != nil {
		config.ErrorStatus("Report not found", http.StatusNotFound, w, err)
		return
	}

	h.Storage.RemoveFiles(report.Files)

	if err := h.DB.DeleteByID(ctx, reportID); err != nil {
		config.ErrorStatus("Failed to delete report", http.StatusInternalServerError, w, err)
		return
	}

	b, _ := json.Marshal(models.APIResponse{Success: true, Message: "Report deleted successfully"})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
