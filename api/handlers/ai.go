package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/medvault/medvault-api/config"
)

// AI proxies prompt requests to the Gemini generateContent API. One attempt per
// request; a provider failure surfaces as a generic 500 without provider internals.
type AI struct {
	APIKey string
	APIURL string
	Client *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate sends one prompt and returns the first candidate's text
func (a AI) generate(prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", a.APIURL, a.APIKey)
	resp, err := a.Client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// GenerateInsightHandler turns a medical record into a short lifestyle recommendation
func (a AI) GenerateInsightHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var record map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil || len(record) == 0 {
		config.ErrorStatus("Record data is required", http.StatusBadRequest, w, err)
		return
	}

	recordJSON, _ := json.Marshal(record)
	prompt := fmt.Sprintf("Here is the user's medical data: %s. Provide a health and lifestyle recommendation under 200 words.", recordJSON)

	insight, err := a.generate(prompt)
	if err != nil {
		zap.S().Errorw("ai insight request failed", "error", err)
		config.ErrorStatus("Failed to generate AI insight.", http.StatusInternalServerError, w, nil)
		return
	}

	b, _ := json.Marshal(struct {
		Insight string `json:"insight"`
	}{Insight: insight})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// HealthTipsRequest pairs basic user info with record fields for tip generation
type HealthTipsRequest struct {
	User *struct {
		Name   string `json:"name"`
		Age    string `json:"age"`
		Gender string `json:"gender"`
	} `json:"user"`
	Records *struct {
		Symptoms    []string `json:"symptoms"`
		Diagnosis   string   `json:"diagnosis"`
		Medications []string `json:"medications"`
		LabResults  []string `json:"labResults"`
	} `json:"records"`
}

// GenerateHealthTipsHandler asks the provider for a structured tip plan and passes
// its JSON through untouched
func (a AI) GenerateHealthTipsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req HealthTipsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.User == nil || req.Records == nil {
		config.ErrorStatus("User and medical records are required", http.StatusBadRequest, w, err)
		return
	}

	prompt := fmt.Sprintf(`Generate personalized health precautions, dietary tips, and cardiovascular safety plans based on the following user and medical data:

User Info:
Name: %s
Age: %s
Gender: %s

Medical Info:
Symptoms: %s
Diagnosis: %s
Medications: %s
Lab Results: %s

Format the response in structured JSON like:
{
  "keyRecommendations": ["..."],
  "dietPlan": ["..."],
  "cardiovascularPrecautions": ["..."],
  "additionalTips": ["..."]
}`,
		req.User.Name, req.User.Age, req.User.Gender,
		strings.Join(req.Records.Symptoms, ", "), req.Records.Diagnosis,
		strings.Join(req.Records.Medications, ", "), strings.Join(req.Records.LabResults, ", "))

	content, err := a.generate(prompt)
	if err != nil {
		zap.S().Errorw("ai health tips request failed", "error", err)
		config.ErrorStatus("Failed to generate AI health tips.", http.StatusInternalServerError, w, nil)
		return
	}
	if content == "" {
		content = "{}"
	}
	if !json.Valid([]byte(content)) {
		zap.S().Errorw("ai health tips response is not valid JSON")
		config.ErrorStatus("Failed to generate AI health tips.", http.StatusInternalServerError, w, nil)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(content))
}

// TranslateTextHandler translates an English recommendation to Hindi
func (a AI) TranslateTextHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		config.ErrorStatus("Text is required", http.StatusBadRequest, w, err)
		return
	}

	prompt := fmt.Sprintf("Translate the following English medical recommendation to Hindi:\n\n%s", req.Text)

	translated, err := a.generate(prompt)
	if err != nil {
		zap.S().Errorw("ai translation request failed", "error", err)
		config.ErrorStatus("Translation to Hindi failed.", http.StatusInternalServerError, w, nil)
		return
	}

	b, _ := json.Marshal(struct {
		TranslatedText string `json:"translatedText"`
	}{TranslatedText: translated})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
