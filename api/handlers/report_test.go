package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medvault/medvault-api/api"
	"github.com/medvault/medvault-api/api/handlers"
	"github.com/medvault/medvault-api/databases/mocks"
	"github.com/medvault/medvault-api/models"
)

func multipartWithFile(t *testing.T, fieldName, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	require.NoError(t, w.WriteField("AadharNo", "123456789012"))
	require.NoError(t, w.WriteField("reportType", "bloodTest"))
	require.NoError(t, w.WriteField("doctorName", "Dr. Rao"))
	require.NoError(t, w.WriteField("reportDate", "2026-08-01"))
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func authedRequest(method, target string, body *bytes.Buffer) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	claims := &api.Claims{UserID: "64f1c2e4a1b2c3d4e5f60718"}
	return req.WithContext(api.ContextWithClaims(req.Context(), claims))
}

func TestReport_UploadRejectsZipBeforeAnyWrite(t *testing.T) {
	db := &mocks.ReportDatabase{}
	storage := &handlers.Storage{Dir: t.TempDir()}
	h := handlers.Report{DB: db, Storage: storage}

	body, contentType := multipartWithFile(t, "files", "archive.zip", "application/zip", []byte("PK\x03\x04"))
	req := authedRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.UploadHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "only PDF and image files are allowed")
	db.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	// nothing staged on disk either
	entries, err := os.ReadDir(storage.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReport_UploadStoresPDF(t *testing.T) {
	db := &mocks.ReportDatabase{}
	var saved *models.Report
	db.On("Create", mock.Anything, mock.AnythingOfType("*models.Report")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.Report)
		}).Return(nil)

	storage := &handlers.Storage{Dir: t.TempDir()}
	h := handlers.Report{DB: db, Storage: storage}

	body, contentType := multipartWithFile(t, "files", "blood-test.pdf", "application/pdf", []byte("%PDF-1.4 test"))
	req := authedRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.UploadHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, saved)
	require.Len(t, saved.Files, 1)
	assert.Equal(t, "blood-test.pdf", saved.Files[0].OriginalName)
	assert.Equal(t, "application/pdf", saved.Files[0].MimeType)
	assert.Equal(t, "123456789012", saved.AadharNo)

	// the attachment really is on disk under the generated name
	_, err := os.Stat(filepath.Join(storage.Dir, saved.Files[0].Filename))
	assert.NoError(t, err)
}

func TestReport_DeleteToleratesMissingFile(t *testing.T) {
	dir := t.TempDir()
	onDisk := filepath.Join(dir, "2-exists.pdf")
	require.NoError(t, os.WriteFile(onDisk, []byte("%PDF"), 0o644))

	reportID := primitive.NewObjectID()
	db := &mocks.ReportDatabase{}
	db.On("FindByIDAndUser", mock.Anything, reportID, "64f1c2e4a1b2c3d4e5f60718").Return(&models.Report{
		ID:     reportID,
		UserID: "64f1c2e4a1b2c3d4e5f60718",
		Files: []models.ReportFile{
			{Filename: "1-missing.pdf", Path: filepath.Join(dir, "1-missing.pdf")},
			{Filename: "2-exists.pdf", Path: onDisk},
		},
	}, nil)
	db.On("DeleteByID", mock.Anything, reportID).Return(nil)

	h := handlers.Report{DB: db, Storage: &handlers.Storage{Dir: dir}}
	req := mux.SetURLVars(authedRequest("DELETE", "/api/report/"+reportID.Hex(), nil),
		map[string]string{"id": reportID.Hex()})
	rr := httptest.NewRecorder()

	h.DeleteReportHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Report deleted successfully")
	db.AssertCalled(t, "DeleteByID", mock.Anything, reportID)

	// the file that did exist is gone
	_, err := os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestReport_GetByIDScopedToUploader(t *testing.T) {
	reportID := primitive.NewObjectID()
	db := &mocks.ReportDatabase{}
	db.On("FindByIDAndUser", mock.Anything, reportID, "64f1c2e4a1b2c3d4e5f60718").
		Return(nil, mongoNoDocuments())

	h := handlers.Report{DB: db, Storage: &handlers.Storage{Dir: t.TempDir()}}
	req := mux.SetURLVars(authedRequest("GET", "/api/report/"+reportID.Hex(), nil),
		map[string]string{"id": reportID.Hex()})
	rr := httptest.NewRecorder()

	h.ReportByIDHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Report not found")
}

func multipartWithMeta(t *testing.T, meta map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="files"; filename="scan.pdf"`)
	header.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)

	for k, v := range meta {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestReport_UploadRejectsUnknownReportType(t *testing.T) {
	db := &mocks.ReportDatabase{}
	dir := t.TempDir()
	h := handlers.Report{DB: db, Storage: &handlers.Storage{Dir: dir}}

	body, contentType := multipartWithMeta(t, map[string]string{
		"reportType": "selfie",
		"doctorName": "Dr. Rao",
		"reportDate": "2026-08-01",
	})
	req := authedRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.UploadHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Validation failed")
	db.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReport_UploadRequiresDoctorAndDate(t *testing.T) {
	db := &mocks.ReportDatabase{}
	h := handlers.Report{DB: db, Storage: &handlers.Storage{Dir: t.TempDir()}}

	body, contentType := multipartWithMeta(t, map[string]string{
		"reportType": "xray",
	})
	req := authedRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.UploadHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Validation failed")
	db.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
