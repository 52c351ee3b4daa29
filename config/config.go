package config

import (
	"encoding/json"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/medvault/medvault-api/logging"
	"github.com/medvault/medvault-api/models"
)

// DefaultGeminiURL is the generateContent endpoint used when GEMINI_API_URL is unset
const DefaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// Config holds the project config values
type Config struct {
	Port          string
	URL           string
	DatabaseName  string
	JWTSecret     string
	AdminEmail    string
	AdminPassword string
	CloudinaryURL string
	GeminiAPIKey  string
	GeminiAPIURL  string
	UploadDir     string
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger, err := logging.New(os.Getenv("APP_ENV"))
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	c := &Config{
		Port:          os.Getenv("PORT"),
		URL:           os.Getenv("DB_URI"),
		DatabaseName:  os.Getenv("DB_NAME"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiAPIURL:  os.Getenv("GEMINI_API_URL"),
		UploadDir:     os.Getenv("UPLOAD_DIR"),
	}
	if c.Port == "" {
		c.Port = "4000"
	}
	if c.GeminiAPIURL == "" {
		c.GeminiAPIURL = DefaultGeminiURL
	}
	if c.UploadDir == "" {
		c.UploadDir = "uploads"
	}
	return c
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// given message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	resp := models.ErrorMessageResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	b, _ := json.Marshal(resp)
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}

// ValidationStatus writes the 400 body carrying the enumerated validation errors
func ValidationStatus(message string, errs []string, w http.ResponseWriter) {
	zap.S().Warnw(message, "errors", errs)
	b, _ := json.Marshal(models.ValidationErrorResponse{Success: false, Message: message, Errors: errs})
	w.WriteHeader(http.StatusBadRequest)
	w.Write(b)
}
