package config

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, "mongodb://127.0.0.1:27017", conf.URL)
	assert.Equal(t, "test", conf.DatabaseName)
}

func TestNewDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("GEMINI_API_URL")
	os.Unsetenv("UPLOAD_DIR")
	conf := New()

	assert.Equal(t, "4000", conf.Port)
	assert.Equal(t, DefaultGeminiURL, conf.GeminiAPIURL)
	assert.Equal(t, "uploads", conf.UploadDir)
}

func TestNewEnvOverrides(t *testing.T) {
	os.Setenv("PORT", "8081")
	os.Setenv("UPLOAD_DIR", "/tmp/staging")
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("UPLOAD_DIR")
	conf := New()

	assert.Equal(t, "8081", conf.Port)
	assert.Equal(t, "/tmp/staging", conf.UploadDir)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("error it borked", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "error it borked", body["message"])
	assert.Equal(t, "bad request", body["error"])
}

func TestErrorStatusWithoutErr(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("not found", http.StatusNotFound, rr, nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.NotContains(t, rr.Body.String(), `"error"`)
}

func TestValidationStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ValidationStatus("Validation failed", []string{"aadharNo must be exactly 12 characters"}, rr)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation failed", body["message"])
	assert.Len(t, body["errors"], 1)
}
