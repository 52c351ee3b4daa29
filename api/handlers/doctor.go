package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/medvault/medvault-api/api"
	"github.com/medvault/medvault-api/config"
	"github.com/medvault/medvault-api/databases"
	"github.com/medvault/medvault-api/models"
)

// Doctor exported for testing purposes
type Doctor struct {
	DB     databases.DoctorDatabase
	BDB    databases.BookingDatabase
	Secret string
}

// AllDoctorsHandler returns every doctor profile, publicly
func (d Doctor) AllDoctorsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	doctors, err := d.DB.FindAll(ctx)
	if err != nil {
		config.ErrorStatus("failed to fetch doctors", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Count: len(doctors), Data: doctors})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DoctorByNameHandler returns the first doctor whose name matches, case-insensitively
func (d Doctor) DoctorByNameHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	name := mux.Vars(r)["name"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	doctor, err := d.DB.FindByName(ctx, name)
	if err != nil {
		config.ErrorStatus("Doctor not found", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Data: doctor})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// LoginHandler checks doctor credentials and issues a token carrying the email
func (d Doctor) LoginHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		config.ValidationStatus("Email and password are required", validationErrors(err), w)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	doctor, err := d.DB.FindByEmail(ctx, req.Email)
	if err != nil {
		config.ErrorStatus("Invalid email or password", http.StatusBadRequest, w, nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(doctor.Password), []byte(req.Password)); err != nil {
		config.ErrorStatus("Invalid email or password", http.StatusBadRequest, w, nil)
		return
	}

	token, err := api.NewEmailToken(d.Secret, doctor.Email)
	if err != nil {
		config.ErrorStatus("failed to sign token", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(struct {
		Token  string        `json:"token"`
		Doctor models.Doctor `json:"doctor"`
	}{Token: token, Doctor: *doctor})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// MeHandler returns the doctor account re-fetched by the auth middleware
func (d Doctor) MeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	doctor, ok := api.DoctorFromContext(r.Context())
	if !ok {
		config.ErrorStatus("Doctor not found", http.StatusUnauthorized, w, nil)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Data: doctor})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// BookingsHandler lists the logged-in doctor's bookings, newest date first
func (d Doctor) BookingsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	doctor, ok := api.DoctorFromContext(r.Context())
	if !ok {
		config.ErrorStatus("Doctor not found", http.StatusUnauthorized, w, nil)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	bookings, err := d.BDB.FindByDoctorEmail(ctx, doctor.Email)
	if err != nil {
		config.ErrorStatus("Error fetching doctor's bookings", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Count: len(bookings), Data: bookings})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
