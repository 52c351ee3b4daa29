package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/medvault/medvault-api/api"
	"github.com/medvault/medvault-api/config"
	"github.com/medvault/medvault-api/databases"
	"github.com/medvault/medvault-api/models"
)

// Admin exported for testing purposes
type Admin struct {
	DB      databases.DoctorDatabase
	Storage *Storage
	Config  config.Config
}

// AddDoctorRequest carries the multipart fields of a new doctor profile
type AddDoctorRequest struct {
	Name       string `validate:"required"`
	Email      string `validate:"required,email"`
	Password   string `validate:"required,min=6,max=50"`
	Degree     string `validate:"required"`
	About      string
	Fees       string `validate:"required"`
	Speciality string `validate:"required"`
	Experience string `validate:"required"`
}

// AddDoctorHandler creates a doctor profile with a Cloudinary-hosted photo
func (a Admin) AddDoctorHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		config.ErrorStatus("failed to parse multipart form", http.StatusBadRequest, w, err)
		return
	}

	req := AddDoctorRequest{
		Name:       r.FormValue("name"),
		Email:      strings.ToLower(strings.TrimSpace(r.FormValue("email"))),
		Password:   r.FormValue("password"),
		Degree:     r.FormValue("degree"),
		About:      r.FormValue("about"),
		Fees:       r.FormValue("fees"),
		Speciality: r.FormValue("speciality"),
		Experience: r.FormValue("experience"),
	}
	if err := validate.Struct(req); err != nil {
		config.ValidationStatus("Missing required fields", validationErrors(err), w)
		return
	}

	var address map[string]interface{}
	if raw := r.FormValue("address"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &address); err != nil {
			config.ErrorStatus("Invalid address format (must be JSON)", http.StatusBadRequest, w, err)
			return
		}
	}

	_, image, err := r.FormFile("image")
	if err != nil {
		config.ErrorStatus("Doctor photo is required", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if existing, err := a.DB.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		config.ErrorStatus("Doctor with this email already exists", http.StatusConflict, w, nil)
		return
	}

	imageURL, err := a.Storage.UploadImage(ctx, image, "doctors")
	if err != nil {
		config.ErrorStatus("failed to upload doctor photo", http.StatusInternalServerError, w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	doctor := models.Doctor{
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hash),
		Degree:     req.Degree,
		About:      req.About,
		Fees:       req.Fees,
		Speciality: req.Speciality,
		Experience: req.Experience,
		Address:    address,
		Image:      imageURL,
	}
	if err := a.DB.Create(ctx, &doctor); err != nil {
		config.ErrorStatus("Failed to add doctor", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Message: "Doctor added successfully", Data: doctor})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// LoginHandler checks the fixed admin credentials and issues a token
func (a Admin) LoginHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if req.Email != a.Config.AdminEmail || req.Password != a.Config.AdminPassword {
		config.ErrorStatus("Invalid admin credentials", http.StatusUnauthorized, w, nil)
		return
	}

	token, err := api.NewEmailToken(a.Config.JWTSecret, req.Email)
	if err != nil {
		config.ErrorStatus("failed to sign token", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}{Success: true, Token: token})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
