package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medvault/medvault-api/api"
	"github.com/medvault/medvault-api/config"
	"github.com/medvault/medvault-api/databases"
	"github.com/medvault/medvault-api/models"
)

// Booking exported for testing purposes
type Booking struct {
	DB databases.BookingDatabase
}

// BookingRequest is the validated payload for creating and updating bookings
type BookingRequest struct {
	BookingID   string `json:"bookingId" validate:"required"`
	AadharNo    string `json:"aadharNo" validate:"required,len=12,numeric"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Doctor      string `json:"doctor" validate:"required"`
	DoctorEmail string `json:"doctoremail" validate:"required,email"`
	Fees        string `json:"fees" validate:"required"`
	Timeslot    string `json:"timeslot" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Message     string `json:"message"`
	FormType    string `json:"formType"`
	Status      string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

// CreateBookingHandler books an appointment. Status defaults to pending.
func (h Booking) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		config.ValidationStatus("Booking creation failed", validationErrors(err), w)
		return
	}
	if req.Status == "" {
		req.Status = models.BookingPending
	}

	booking := models.Booking{
		BookingID:   req.BookingID,
		AadharNo:    req.AadharNo,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Doctor:      req.Doctor,
		DoctorEmail: req.DoctorEmail,
		Fees:        req.Fees,
		Timeslot:    req.Timeslot,
		Date:        req.Date,
		Message:     req.Message,
		FormType:    req.FormType,
		Status:      req.Status,
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.Create(ctx, &booking); err != nil {
		config.ErrorStatus("Booking creation failed", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Message: "Booking created successfully", Data: booking})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// AllBookingsHandler lists every booking, newest date first
func (h Booking) AllBookingsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	bookings, err := h.DB.FindAll(ctx)
	if err != nil {
		config.ErrorStatus("Error fetching bookings", http.StatusInternalServerError, w, err)
		return
	}
	writeBookings(w, bookings)
}

// BookingsByEmailHandler lists a patient's bookings by email
func (h Booking) BookingsByEmailHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	email := mux.Vars(r)["email"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	bookings, err := h.DB.FindByEmail(ctx, email)
	if err != nil {
		config.ErrorStatus("Error fetching user bookings", http.StatusInternalServerError, w, err)
		return
	}
	writeBookings(w, bookings)
}

// BookingsByDoctorNameHandler lists bookings whose doctor name fuzzy-matches
func (h Booking) BookingsByDoctorNameHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	doctorName := mux.Vars(r)["doctorName"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	bookings, err := h.DB.FindByDoctorName(ctx, doctorName)
	if err != nil {
		config.ErrorStatus("Error fetching bookings by doctor", http.StatusInternalServerError, w, err)
		return
	}
	writeBookings(w, bookings)
}

// UpdateBookingHandler updates a booking found by bookingId, falling back to the
// Mongo _id when the bookingId misses
func (h Booking) UpdateBookingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	// the path id satisfies the required check, but only a caller-supplied
	// bookingId is written back
	suppliedBookingID := req.BookingID != ""
	if !suppliedBookingID {
		req.BookingID = id
	}
	if err := validate.Struct(req); err != nil {
		config.ValidationStatus("Missing required fields", validationErrors(err), w)
		return
	}

	set := bson.M{
		"aadharNo":    req.AadharNo,
		"name":        req.Name,
		"email":       req.Email,
		"phone":       req.Phone,
		"doctor":      req.Doctor,
		"doctoremail": req.DoctorEmail,
		"fees":        req.Fees,
		"timeslot":    req.Timeslot,
		"date":        req.Date,
		"message":     req.Message,
		"formType":    req.FormType,
	}
	if suppliedBookingID {
		set["bookingId"] = req.BookingID
	}
	if req.Status != "" {
		set["status"] = req.Status
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	booking, resolution, err := h.DB.UpdateByID(ctx, id, set)
	if err != nil {
		if errors.Is(err, databases.ErrInvalidBookingID) {
			config.ErrorStatus("Invalid booking ID format", http.StatusBadRequest, w, err)
			return
		}
		config.ErrorStatus("Failed to update booking", http.StatusInternalServerError, w, err)
		return
	}
	if resolution == databases.BookingNotFound {
		config.ErrorStatus("Booking not found", http.StatusNotFound, w, nil)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Message: "Booking updated successfully", Data: booking})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteBookingHandler removes a booking by its Mongo _id
func (h Booking) DeleteBookingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		config.ErrorStatus("Invalid booking ID format", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.DeleteByObjectID(ctx, objectID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			config.ErrorStatus("Booking not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("Failed to delete booking", http.StatusInternalServerError, w, err)
		return
	}

	b, _ := json.Marshal(models.APIResponse{Success: true, Message: "Booking deleted successfully"})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// AadharsByDoctorEmailHandler lists the distinct patient Aadhaar numbers that have
// booked with the given doctor
func (h Booking) AadharsByDoctorEmailHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	doctorEmail := mux.Vars(r)["doctorEmail"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	aadhars, err := h.DB.DistinctAadhars(ctx, doctorEmail)
	if err != nil {
		config.ErrorStatus("Error fetching aadhar numbers", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(struct {
		Success   bool     `json:"success"`
		AadharNos []string `json:"aadharNos"`
	}{Success: true, AadharNos: aadhars})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func writeBookings(w http.ResponseWriter, bookings []models.Booking) {
	b, err := json.Marshal(models.APIResponse{Success: true, Count: len(bookings), Data: bookings})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
