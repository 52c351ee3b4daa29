package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/medvault/medvault-api/api"
	"github.com/medvault/medvault-api/config"
	"github.com/medvault/medvault-api/databases"
	"github.com/medvault/medvault-api/models"
)

// User exported for testing purposes
type User struct {
	DB      databases.UserDatabase
	Storage *Storage
	Secret  string
}

// SignupRequest carries the multipart form fields of a new patient account
type SignupRequest struct {
	FullName string `validate:"required,max=100"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required"`
	Password string `validate:"required,min=6,max=50"`
	AadharNo string `validate:"required,len=12,numeric"`
}

// SignupHandler registers a patient account. Identity images are staged locally and
// pushed to Cloudinary; a hosting failure is tolerated and the account is still
// created without the affected URL.
func (u User) SignupHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		config.ErrorStatus("failed to parse multipart form", http.StatusBadRequest, w, err)
		return
	}

	req := SignupRequest{
		FullName: r.FormValue("FullName"),
		Email:    strings.ToLower(strings.TrimSpace(r.FormValue("Email"))),
		Phone:    r.FormValue("Phone"),
		Password: r.FormValue("Password"),
		AadharNo: r.FormValue("AadharNo"),
	}
	if err := validate.Struct(req); err != nil {
		config.ValidationStatus("All required fields must be provided", validationErrors(err), w)
		return
	}

	_, profilePic, err := r.FormFile("profilePic")
	if err != nil {
		config.ErrorStatus("Profile picture is required", http.StatusBadRequest, w, err)
		return
	}
	_, aadharImg, err := r.FormFile("aadharImg")
	if err != nil {
		config.ErrorStatus("Aadhar image is required", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if existing, err := u.DB.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		config.ErrorStatus("User with this email already exists", http.StatusBadRequest, w, nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	user := models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hash),
		AadharNo: req.AadharNo,
	}

	if url, err := u.Storage.UploadImage(ctx, profilePic, "users/profile"); err != nil {
		zap.S().Warnw("profile picture upload failed", "email", req.Email, "error", err)
	} else {
		user.ProfilePic = url
	}
	if url, err := u.Storage.UploadImage(ctx, aadharImg, "users/aadhar"); err != nil {
		zap.S().Warnw("aadhar image upload failed", "email", req.Email, "error", err)
	} else {
		user.AadharImg = url
	}

	if err := u.DB.Create(ctx, &user); err != nil {
		config.ErrorStatus("Failed to add user", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Message: "User added successfully", Data: user})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// LoginRequest is the JSON credential pair accepted by the login endpoints
type LoginRequest struct {
	Email    string `json:"Email" validate:"required,email"`
	Password string `json:"Password" validate:"required"`
}

// LoginHandler checks credentials and issues a signed token carrying the user ID
func (u User) LoginHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req LoginRequest
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

	user, err := u.DB.FindByEmail(ctx, req.Email)
	if err != nil {
		config.ErrorStatus("Invalid email or password", http.StatusBadRequest, w, nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		config.ErrorStatus("Invalid email or password", http.StatusBadRequest, w, nil)
		return
	}

	token, err := api.NewUserToken(u.Secret, user.ID.Hex())
	if err != nil {
		config.ErrorStatus("failed to sign token", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.LoginResponse{Token: token, User: *user})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// MeHandler returns the account identified by the verified token
func (u User) MeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, ok := api.ClaimsFromContext(r.Context())
	if !ok {
		config.ErrorStatus("Token is not valid", http.StatusUnauthorized, w, nil)
		return
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.DB.FindByID(ctx, userID)
	if err != nil {
		config.ErrorStatus("User not found", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Data: user})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// AadharByEmailHandler resolves a user's Aadhaar number from their email
func (u User) AadharByEmailHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Email string `json:"Email" validate:"required,email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("Email is required", http.StatusBadRequest, w, err)
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		config.ValidationStatus("Invalid email format", validationErrors(err), w)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.DB.FindByEmail(ctx, req.Email)
	if err != nil {
		config.ErrorStatus("User not found", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(struct {
		Success  bool   `json:"success"`
		AadharNo string `json:"AadharNo"`
	}{Success: true, AadharNo: user.AadharNo})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
