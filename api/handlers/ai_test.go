package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medvault/medvault-api/api/handlers"
)

func fakeGemini(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.WriteHeader(status)
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": text}},
				}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestAI_GenerateInsight(t *testing.T) {
	srv := fakeGemini(t, http.StatusOK, "Eat more vegetables.")
	defer srv.Close()

	h := handlers.AI{APIKey: "test-key", APIURL: srv.URL, Client: srv.Client()}
	body := bytes.NewBufferString(`{"weight":"65","height":"165","bmi":"23.87"}`)
	req := httptest.NewRequest("POST", "/api/generate-insight", body)
	rr := httptest.NewRecorder()

	h.GenerateInsightHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"insight":"Eat more vegetables."}`, rr.Body.String())
}

func TestAI_GenerateInsightEmptyBody(t *testing.T) {
	h := handlers.AI{APIKey: "test-key", APIURL: "http://unused", Client: http.DefaultClient}
	req := httptest.NewRequest("POST", "/api/generate-insight", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()

	h.GenerateInsightHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Record data is required")
}

func TestAI_ProviderFailureIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded, key=abc"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	h := handlers.AI{APIKey: "test-key", APIURL: srv.URL, Client: srv.Client()}
	body := bytes.NewBufferString(`{"weight":"65"}`)
	req := httptest.NewRequest("POST", "/api/generate-insight", body)
	rr := httptest.NewRecorder()

	h.GenerateInsightHandler(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to generate AI insight.")
	// no provider internals leak into the response
	assert.NotContains(t, rr.Body.String(), "quota")
}

func TestAI_TranslateText(t *testing.T) {
	srv := fakeGemini(t, http.StatusOK, "अधिक सब्जियां खाएं।")
	defer srv.Close()

	h := handlers.AI{APIKey: "test-key", APIURL: srv.URL, Client: srv.Client()}
	body := bytes.NewBufferString(`{"text":"Eat more vegetables."}`)
	req := httptest.NewRequest("POST", "/api/translate-text", body)
	rr := httptest.NewRecorder()

	h.TranslateTextHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "translatedText")
}

func TestAI_HealthTipsPassThrough(t *testing.T) {
	srv := fakeGemini(t, http.StatusOK, `{"keyRecommendations":["walk daily"],"dietPlan":[],"cardiovascularPrecautions":[],"additionalTips":[]}`)
	defer srv.Close()

	h := handlers.AI{APIKey: "test-key", APIURL: srv.URL, Client: srv.Client()}
	body := bytes.NewBufferString(`{"user":{"name":"Asha","age":"34","gender":"female"},"records":{"diagnosis":"hypertension"}}`)
	req := httptest.NewRequest("POST", "/api/generate-health-tips", body)
	rr := httptest.NewRecorder()

	h.GenerateHealthTipsHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "walk daily")
}
